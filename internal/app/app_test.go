package app

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"github.com/dkravtsov/orgledger/internal/config"
	"github.com/dkravtsov/orgledger/internal/handlers"
	"github.com/dkravtsov/orgledger/internal/repo"
	"github.com/dkravtsov/orgledger/internal/service"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestNew() {
	s.NotNil(s.app)
	s.False(s.app.ready)
}

func (s *ApplicationSuite) TestWait_NotStarted() {
	s.NoError(s.app.Wait())
}

func (s *ApplicationSuite) TestWait_Error() {
	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		return fmt.Errorf("mock error")
	})
	s.app.g = g

	err := s.app.Wait()

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestStartHTTPServer_GracefulShutdown() {
	s.app.cfg = &config.Config{Address: "localhost:0"}
	s.app.repo = repo.New(nil, nil)
	s.app.srv = service.New(s.app.repo, time.Hour)
	s.app.api = handlers.New(s.app.srv)

	ctx, cancel := context.WithCancel(context.Background())
	s.app.startHTTPServer(ctx)
	cancel()

	s.NoError(s.app.Wait())
}
