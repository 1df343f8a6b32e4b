// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixtest

import "github.com/stretchr/testify/suite"

// OptionSuite is an embeddable suite for testing functional options
// against a target type.  A fresh target is allocated for each test and
// subtest.
type OptionSuite[T any] struct {
	suite.Suite
	Target *T
}

func (suite *OptionSuite[T]) SetupTest() {
	suite.Target = new(T)
}

func (suite *OptionSuite[T]) SetupSubTest() {
	suite.Target = new(T)
}
