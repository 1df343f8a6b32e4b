// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixtest

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type OptionSuiteSuite struct {
	OptionSuite[http.Client]
}

func (suite *OptionSuiteSuite) TestFreshTargetPerSubtest() {
	suite.Run("Dirty", func() {
		suite.Require().NotNil(suite.Target)
		suite.Target.Timeout = 17 * time.Second
	})

	suite.Run("Fresh", func() {
		suite.Require().NotNil(suite.Target)
		suite.Zero(suite.Target.Timeout)
	})
}

func (suite *OptionSuiteSuite) TestFreshTargetPerTest() {
	suite.Require().NotNil(suite.Target)
	suite.Zero(suite.Target.Timeout)
}

func TestOptionSuite(t *testing.T) {
	suite.Run(t, new(OptionSuiteSuite))
}
