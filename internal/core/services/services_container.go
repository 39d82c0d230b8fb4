package services

import (
	"github.com/SscSPs/voice_journal_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/voice_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/voice_journal_app/internal/core/ports/services"
)

// Gateways bundles the outbound adapters the services depend on.
type Gateways struct {
	Resolver    gateways.LocatorResolver
	Stager      gateways.Stager
	Transcriber gateways.Transcriber
	Uploader    gateways.ObjectUploader
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, gw Gateways, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Journal:       NewJournalService(repos.JournalRepo, repos.EntryRepo, options...),
		Entry:         NewEntryService(repos.EntryRepo, repos.JournalRepo, gw.Uploader, options...),
		Transcription: NewTranscriptionService(gw.Resolver, gw.Stager, gw.Transcriber, repos.EntryRepo, options...),
	}
}
