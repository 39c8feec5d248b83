// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/StianAK82/RegnskapSky-sub001/internal/domain"
	"github.com/StianAK82/RegnskapSky-sub001/internal/domain/models"
	"github.com/StianAK82/RegnskapSky-sub001/internal/infrastructure/auth"
	"github.com/StianAK82/RegnskapSky-sub001/internal/infrastructure/email"
	"github.com/StianAK82/RegnskapSky-sub001/internal/infrastructure/store"
	"github.com/StianAK82/RegnskapSky-sub001/internal/logging"
	"github.com/StianAK82/RegnskapSky-sub001/internal/service"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// natsShutdownTimeout is the duration NATS gets to drain subscriptions on shutdown.
	natsShutdownTimeout = 10 * time.Second

	// httpShutdownTimeout is the duration the HTTP server gets to finish in-flight requests.
	httpShutdownTimeout = 25 * time.Second
)

// setupJWTAuth configures JWT authentication for the service
func setupJWTAuth() (*auth.JWTAuth, error) {
	jwtAuthConfig := auth.JWTAuthConfig{
		JWKSURL:             os.Getenv("JWKS_URL"),
		Audience:            os.Getenv("JWT_AUDIENCE"),
		Issuer:              os.Getenv("JWT_ISSUER"),
		MockLocalPrincipal:  os.Getenv("JWT_AUTH_DISABLED_MOCK_LOCAL_PRINCIPAL"),
		MockLocalLicenseUID: os.Getenv("JWT_AUTH_DISABLED_MOCK_LOCAL_LICENSE_UID"),
	}
	return auth.NewJWTAuth(jwtAuthConfig)
}

// setupEmailService configures the reminder email delivery.
// When SMTP is disabled, reminders are logged and dropped.
func setupEmailService(env environment) (domain.EmailService, error) {
	if !env.SMTP.Enabled {
		slog.Info("SMTP is disabled, reminder emails will not be sent")
		return email.NewNoOpService(), nil
	}

	return email.NewSMTPService(email.SMTPConfig{
		Host:     env.SMTP.Host,
		Port:     env.SMTP.Port,
		From:     env.SMTP.From,
		Username: env.SMTP.Username,
		Password: env.SMTP.Password,
	})
}

// setupNATS connects to the NATS server used for both the key-value stores
// and the service messaging.
func setupNATS(ctx context.Context, env environment, gracefulCloseWG *sync.WaitGroup, done chan os.Signal) (*nats.Conn, error) {
	slog.DebugContext(ctx, "connecting to NATS", "nats_url", env.NatsURL)

	gracefulCloseWG.Add(1)
	natsConn, err := nats.Connect(
		env.NatsURL,
		nats.DrainTimeout(natsShutdownTimeout),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			slog.ErrorContext(ctx, "NATS error", logging.ErrKey, err)
		}),
		nats.ClosedHandler(func(conn *nats.Conn) {
			slog.InfoContext(ctx, "NATS connection closed", "connected_url", conn.ConnectedUrl())
			gracefulCloseWG.Done()
			// If the connection closes outside of a shutdown, trigger one.
			select {
			case done <- os.Interrupt:
			default:
			}
		}),
	)
	if err != nil {
		gracefulCloseWG.Done()
		return nil, err
	}

	slog.InfoContext(ctx, "connected to NATS", "connected_url", natsConn.ConnectedUrl())

	return natsConn, nil
}

// repositories holds the key-value backed repositories of the service.
type repositories struct {
	Task   *store.NatsTaskRepository
	Client *store.NatsClientRepository
}

// getKeyValueStores gets the JetStream key-value stores backing the service repositories.
func getKeyValueStores(ctx context.Context, natsConn *nats.Conn) (*repositories, error) {
	js, err := jetstream.New(natsConn)
	if err != nil {
		slog.ErrorContext(ctx, "error creating JetStream context", logging.ErrKey, err)
		return nil, err
	}

	taskKV, err := js.KeyValue(ctx, store.KVStoreNameTasks)
	if err != nil {
		slog.ErrorContext(ctx, "error getting tasks key-value store", logging.ErrKey, err)
		return nil, err
	}

	clientKV, err := js.KeyValue(ctx, store.KVStoreNameClients)
	if err != nil {
		slog.ErrorContext(ctx, "error getting clients key-value store", logging.ErrKey, err)
		return nil, err
	}

	return &repositories{
		Task:   store.NewNatsTaskRepository(taskKV),
		Client: store.NewNatsClientRepository(clientKV),
	}, nil
}

// natsMessage adapts a *nats.Msg to the domain.Message interface.
type natsMessage struct {
	msg *nats.Msg
}

func (m *natsMessage) Subject() string {
	return m.msg.Subject
}

func (m *natsMessage) Data() []byte {
	return m.msg.Data
}

func (m *natsMessage) HasReply() bool {
	return m.msg.Reply != ""
}

func (m *natsMessage) Respond(data []byte) error {
	return m.msg.Respond(data)
}

// createNatsSubcriptions creates the queue subscriptions for the task service.
func createNatsSubcriptions(ctx context.Context, svc *TasksAPI, natsConn *nats.Conn) error {
	subjects := []string{
		models.TaskGetTitleSubject,
		models.ClientDeletedSubject,
	}

	for _, subject := range subjects {
		_, err := natsConn.QueueSubscribe(subject, models.TasksAPIQueue, func(msg *nats.Msg) {
			svc.taskHandler.HandleMessage(ctx, &natsMessage{msg: msg})
		})
		if err != nil {
			slog.ErrorContext(ctx, "error creating NATS subscription", logging.ErrKey, err, "subject", subject)
			return err
		}
		slog.DebugContext(ctx, "created NATS subscription", "subject", subject, "queue", models.TasksAPIQueue)
	}

	return nil
}

// gracefulShutdown drains the HTTP server, the reminder scheduler, and the
// NATS connection before exiting.
func gracefulShutdown(httpServer *http.Server, natsConn *nats.Conn, reminderService *service.ReminderService, gracefulCloseWG *sync.WaitGroup, cancel context.CancelFunc) {
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.With(logging.ErrKey, err).Error("error shutting down http server")
	}
	gracefulCloseWG.Done()

	// Wait for a running reminder sweep to finish.
	reminderService.Stop()

	if !natsConn.IsClosed() {
		if err := natsConn.Drain(); err != nil {
			slog.With(logging.ErrKey, err).Error("error draining NATS connection")
		}
	}

	cancel()
	gracefulCloseWG.Wait()

	slog.Info("shutdown complete")
}
