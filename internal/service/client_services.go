package service

import (
	"github.com/MKhiriev/go-pass-unlock/internal/adapter"
	"github.com/MKhiriev/go-pass-unlock/internal/crypto"
	"github.com/MKhiriev/go-pass-unlock/internal/logger"
	"github.com/MKhiriev/go-pass-unlock/internal/store"
)

type ClientServices struct {
	ChallengeService ClientChallengeService
	AuthService      ClientAuthService
}

func NewClientServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	keyChain crypto.KeyChainService,
	srpFactory crypto.SRPFactory,
	log *logger.Logger,
) *ClientServices {
	var sessions store.SessionRepository
	if storages != nil {
		sessions = storages.SessionRepository
	}

	challengeSvc := NewClientChallengeService(serverAdapter, srpFactory, log)
	authSvc := NewClientAuthService(sessions, serverAdapter, challengeSvc, keyChain, log)

	return &ClientServices{
		ChallengeService: challengeSvc,
		AuthService:      authSvc,
	}
}
