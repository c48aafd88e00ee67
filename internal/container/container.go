package container

import (
	"github.com/sirupsen/logrus"

	"github.com/PRASANNAPATIL12/2.31weddingcard/config"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/entity"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/repository"
	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/session"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg    *config.Config
	logger *logrus.Logger

	users    repository.Store[entity.User]
	weddings repository.Store[entity.WeddingProfile]
	sessions session.Registry

	degraded func() bool
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetUserStore(s repository.Store[entity.User]) { users = s }
func GetUserStore() repository.Store[entity.User]  { return users }

func SetWeddingStore(s repository.Store[entity.WeddingProfile]) { weddings = s }
func GetWeddingStore() repository.Store[entity.WeddingProfile]  { return weddings }

func SetSessions(r session.Registry) { sessions = r }
func GetSessions() session.Registry  { return sessions }

// SetDegraded records how modules can observe whether the document database
// was reachable at startup.
func SetDegraded(f func() bool) { degraded = f }
func GetDegraded() func() bool  { return degraded }
