// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixtest

import (
	"net"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
)

type PathSuite struct {
	suite.Suite
}

func (suite *PathSuite) TestBindable() {
	path := Path(suite.T())

	// sun_path on most platforms tops out at 104 bytes
	suite.Less(len(path), 104)

	listener, err := net.Listen("unix", path)
	suite.Require().NoError(err)
	suite.NoError(listener.Close())
}

func (suite *PathSuite) TestUnique() {
	first := Path(suite.T())
	second := Path(suite.T())
	suite.NotEqual(first, second)
}

func (suite *PathSuite) TestCleanup() {
	var path string
	suite.T().Run("create", func(t *testing.T) {
		path = Path(t)
	})

	// the subtest's cleanup removed the temporary directory
	_, err := os.Stat(path)
	suite.True(os.IsNotExist(err))
}

func TestPath(t *testing.T) {
	suite.Run(t, new(PathSuite))
}
