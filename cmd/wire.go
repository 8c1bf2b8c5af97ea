package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/bnema/council-cli/internal/adapters/exec/shell"
	jsonlexperience "github.com/bnema/council-cli/internal/adapters/experience/jsonl"
	sqliteexperience "github.com/bnema/council-cli/internal/adapters/experience/sqlite"
	"github.com/bnema/council-cli/internal/adapters/provider/factory"
	"github.com/bnema/council-cli/internal/adapters/repo/jsonfile"
	tomlrepo "github.com/bnema/council-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/council-cli/internal/adapters/secrets/chain"
	"github.com/bnema/council-cli/internal/application"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

// turnFunc runs one council turn and returns what the console renders.
type turnFunc func(ctx context.Context, sess *session, input string, spinnerOut io.Writer) (application.TurnReport, error)

type app struct {
	settings    settings
	logger      *log.Logger
	transcripts *jsonfile.Repository
	rosterPath  string
	secretStore ports.SecretStore
	credentials *application.CredentialService
	rosters     *application.RosterService
	turn        turnFunc
}

// session is everything a conversation needs once credentials are resolved.
type session struct {
	roster       domain.Roster
	router       *application.Router
	store        *application.TranscriptStore
	conversation *application.ConversationService
	experiences  ports.ExperienceLog
	close        func()
}

func wireApp() (*app, error) {
	// A local .env supplies provider keys without overriding the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	homeDir, err := resolveHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfig(homeDir)
	if err != nil {
		return nil, err
	}
	settings, err := readSettings(cfg, homeDir)
	if err != nil {
		return nil, err
	}

	logger := newLogger(settings.logLevel)

	rosterRepo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire roster repository: %w", err)
	}
	transcripts, err := jsonfile.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire transcript repository: %w", err)
	}
	secretStore, err := chainstore.NewPassFirstWithFileFallback(settings.secretsDir, logger)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	credentials := application.NewCredentialService(rosterRepo, secretStore, logger)

	return &app{
		settings:    settings,
		logger:      logger,
		transcripts: transcripts,
		rosterPath:  rosterRepo.Path(),
		secretStore: secretStore,
		credentials: credentials,
		rosters:     application.NewRosterService(rosterRepo, credentials),
		turn:        turn,
	}, nil
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "council"})
	parsed, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)

	return logger
}

func (a *app) newTranscriptStore() *application.TranscriptStore {
	return application.NewTranscriptStore(a.transcripts, a.settings.maxMessages, a.settings.systemPrompt, a.logger)
}

// openSession resolves credentials for every required endpoint and fails
// before any model is called when one is missing.
func (a *app) openSession(ctx context.Context) (*session, error) {
	roster, err := a.rosters.Load(ctx)
	if err != nil {
		return nil, err
	}

	creds, err := a.credentials.Resolve(ctx, roster)
	if err != nil {
		return nil, err
	}
	for _, name := range creds.Skipped {
		a.logger.Info("endpoint disabled, no key configured", "endpoint", name)
	}

	router := application.NewRouter(a.logger)
	if err := factory.RegisterAll(ctx, router, roster, creds.Keys); err != nil {
		return nil, err
	}

	blocklist, err := domain.NewBlocklist(a.settings.blockedPatterns...)
	if err != nil {
		return nil, err
	}

	experiences, closeExperiences, err := a.openExperienceLog(ctx)
	if err != nil {
		return nil, err
	}

	store := a.newTranscriptStore()
	conversation := application.NewConversationService(application.ConversationDeps{
		Store:           store,
		Router:          router,
		Debate:          application.NewDebateService(router, roster, a.settings.rounds, a.logger),
		Extractor:       domain.NewExtractor(a.settings.marker),
		Executor:        application.NewExecutorService(shell.NewRunner(a.settings.executor), blocklist, a.logger),
		Evaluator:       application.NewEvaluatorService(router, roster.EvaluatorEndpoint()),
		QuickOrder:      lo.Filter(roster.QuickOrder(), func(name string, _ int) bool { return router.Has(name) }),
		Experiences:     experiences,
		Clock:           ports.SystemClock{},
		PersistEachTurn: a.settings.persistEachTurn,
		Logger:          a.logger,
	})

	return &session{
		roster:       roster,
		router:       router,
		store:        store,
		conversation: conversation,
		experiences:  experiences,
		close:        closeExperiences,
	}, nil
}

func (a *app) openExperienceLog(ctx context.Context) (ports.ExperienceLog, func(), error) {
	noop := func() {}

	switch a.settings.experienceBackend {
	case experienceBackendOff:
		return nil, noop, nil
	case experienceBackendSQLite:
		store, err := sqliteexperience.Open(ctx, a.settings.experiencePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open experience database: %w", err)
		}
		return store, func() {
			if err := store.Close(); err != nil {
				a.logger.Warn("failed to close experience database", "err", err)
			}
		}, nil
	default:
		experienceLog, err := jsonlexperience.NewLog(a.settings.experiencePath)
		if err != nil {
			return nil, noop, err
		}
		return experienceLog, noop, nil
	}
}
