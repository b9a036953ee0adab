package accessmanager

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConcurrentTestSuite struct {
	suite.Suite
	c *Concurrent[string, string, string, string]
}

func (s *ConcurrentTestSuite) SetupTest() {
	s.c = NewConcurrent(New[string, string, string, string]())
}

func (s *ConcurrentTestSuite) TestAddUserThenQuery() {
	s.Require().NoError(s.c.AddUser("alice"))
	s.Require().NoError(s.c.AddGroup("engineers"))
	s.Require().NoError(s.c.AddUserToGroupMapping("alice", "engineers"))
	s.Require().NoError(s.c.AddGroupToApplicationComponentAndAccessLevelMapping("engineers", "orders", "view"))

	ok, err := s.c.HasAccessToApplicationComponent("alice", "orders", "view")
	s.Require().NoError(err)
	s.Require().True(ok)
}

func (s *ConcurrentTestSuite) TestConcurrentReadsAndWritesDoNotRace() {
	const n = 50
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := "user"
			_ = s.c.AddUser(user)
			_, _ = s.c.HasAccessToApplicationComponent(user, "orders", "view")
			_ = s.c.ContainsUser(user)
		}(i)
	}
	wg.Wait()

	s.Require().True(s.c.ContainsUser("user"))
}

func TestConcurrentTestSuite(t *testing.T) {
	suite.Run(t, new(ConcurrentTestSuite))
}
