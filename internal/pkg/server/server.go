package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/relayhq/relay/pkg/log"
)

type Server struct {
	s      *http.Server
	StopFn func()
}

func NewServer(port uint32, stopFn func()) *Server {
	return &Server{
		s: &http.Server{
			ReadTimeout:  time.Second * 30,
			WriteTimeout: time.Second * 30,
			Addr:         fmt.Sprintf(":%d", port),
		},
		StopFn: stopFn,
	}
}

func (s *Server) SetHandler(handler http.Handler) {
	s.s.Handler = handler
}

func (s *Server) Listen() {
	go func() {
		err := s.s.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to listen")
		}
	}()

	log.Infof("Server started on %s", s.s.Addr)

	s.gracefulShutdown()
}

func (s *Server) gracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.s.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server Shutdown")
	}

	if s.StopFn != nil {
		s.StopFn()
	}

	log.Info("Server exiting")
}
