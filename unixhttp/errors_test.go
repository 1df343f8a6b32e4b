// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorsSuite struct {
	suite.Suite
}

func (suite *ErrorsSuite) TestStatusCodeError() {
	suite.Run("KnownCode", func() {
		sce := &StatusCodeError{
			Code: http.StatusNotFound,
			Body: []byte("gone"),
		}

		suite.Contains(sce.Error(), "404")
		suite.Contains(sce.Error(), "Not Found")
		suite.Equal(http.StatusNotFound, sce.StatusCode())
	})

	suite.Run("UnknownCode", func() {
		sce := &StatusCodeError{Code: 299}
		suite.Contains(sce.Error(), "299")
	})
}

func (suite *ErrorsSuite) TestJSONDecodeError() {
	cause := errors.New("bad syntax")
	jde := &JSONDecodeError{
		Body: []byte("not json"),
		Err:  cause,
	}

	suite.Contains(jde.Error(), "bad syntax")
	suite.ErrorIs(jde, cause)
}

func TestErrors(t *testing.T) {
	suite.Run(t, new(ErrorsSuite))
}
