// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/httpaux/roundtrip"
)

type RoundTripperChainSuite struct {
	suite.Suite
}

func (suite *RoundTripperChainSuite) orderConstructor(order *[]int, id int) RoundTripperConstructor {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundtrip.Func(func(request *http.Request) (*http.Response, error) {
			*order = append(*order, id)
			return next.RoundTrip(request)
		})
	}
}

func (suite *RoundTripperChainSuite) TestEmpty() {
	var rc RoundTripperChain

	suite.Run("NilNext", func() {
		suite.Nil(rc.Then(nil))
	})

	suite.Run("WithNext", func() {
		next := roundtrip.Func(func(*http.Request) (*http.Response, error) {
			return nil, nil
		})

		suite.NotNil(rc.Then(next))
	})
}

func (suite *RoundTripperChainSuite) TestOrdered() {
	var order []int

	rc := NewRoundTripperChain(
		suite.orderConstructor(&order, 1),
	).Append(
		suite.orderConstructor(&order, 2),
	).Extend(NewRoundTripperChain(
		suite.orderConstructor(&order, 3),
	))

	decorated := rc.Then(roundtrip.Func(func(*http.Request) (*http.Response, error) {
		return new(http.Response), nil
	}))

	_, err := decorated.RoundTrip(new(http.Request))
	suite.Require().NoError(err)

	// execution order matches the order presented to the chain
	suite.Equal([]int{1, 2, 3}, order)
}

func (suite *RoundTripperChainSuite) TestNilNextUsesDefault() {
	invoked := false

	rc := NewRoundTripperChain(
		func(next http.RoundTripper) http.RoundTripper {
			suite.Same(http.DefaultTransport, next)
			return roundtrip.Func(func(*http.Request) (*http.Response, error) {
				invoked = true
				return new(http.Response), nil
			})
		},
	)

	decorated := rc.Then(nil)
	suite.Require().NotNil(decorated)

	_, err := decorated.RoundTrip(new(http.Request))
	suite.Require().NoError(err)
	suite.True(invoked)
}

func TestRoundTripperChain(t *testing.T) {
	suite.Run(t, new(RoundTripperChainSuite))
}
