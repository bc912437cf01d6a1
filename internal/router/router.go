package router

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"care-portals/internal/adapters/remote/httpbackend"
	"care-portals/internal/adapters/remote/mock"
	mem "care-portals/internal/adapters/storage/memory"
	pg "care-portals/internal/adapters/storage/postgres"
	redisstore "care-portals/internal/adapters/storage/redis"
	"care-portals/internal/config"
	"care-portals/internal/domain/catalog"
	"care-portals/internal/domain/navigator"
	"care-portals/internal/domain/session"
	"care-portals/internal/domain/support"
	"care-portals/internal/domain/wizard"
	"care-portals/internal/middleware"
	"care-portals/internal/platform/logger"
	"care-portals/internal/ports/backend"

	_ "care-portals/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	goredis "github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil => Nop

	// Opcional: si viene, el catálogo vive en Postgres (se crea y siembra al arrancar).
	DB *sql.DB

	// Opcional: si viene, las sesiones viven en Redis.
	Redis goredis.UniversalClient

	// Opcional: pisa el backend elegido por config (tests).
	Remote backend.Backend
}

// App es el handler HTTP más lo que hay que drenar al apagar.
type App struct {
	Handler http.Handler

	forms *wizard.Service
}

// Wait espera los envíos fire-and-forget pendientes.
func (a *App) Wait() {
	a.forms.Wait()
}

func New(ctx context.Context, opts Options) (*App, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	// Catálogo
	pets, testimonials, err := catalog.Fixtures()
	if err != nil {
		return nil, err
	}
	var catalogRepo catalog.Repository
	if opts.DB != nil {
		if err := pg.EnsureSchema(ctx, opts.DB); err != nil {
			return nil, err
		}
		repo := pg.NewCatalogRepo(opts.DB)
		if err := repo.Seed(ctx, pets, testimonials); err != nil {
			return nil, err
		}
		catalogRepo = repo
	} else {
		catalogRepo = mem.NewCatalogRepo(pets, testimonials)
	}

	// Sesiones
	var store session.Store
	if opts.Redis != nil {
		store = redisstore.NewSessionStore(opts.Redis)
	} else {
		store = mem.NewSessionStore()
	}
	tokens := session.NewTokens(cfg.TokenSecret)

	// Backend remoto
	remote := opts.Remote
	if remote == nil {
		remote, err = newRemote(cfg)
		if err != nil {
			return nil, err
		}
	}

	reg, err := wizard.DefaultRegistry()
	if err != nil {
		return nil, err
	}

	// Services por módulo
	catalogSvc := catalog.NewService(catalogRepo)
	sessionSvc := session.NewService(store, tokens, session.Options{Latency: cfg.Latency.Login.Std()})
	formsSvc := wizard.NewService(reg, mem.NewDraftsRepo(), log)
	supportSvc := support.NewService(remote)
	navSvc := navigator.NewService(navigator.Deps{
		Sessions: sessionSvc,
		Forms:    formsSvc,
		Catalog:  catalogSvc,
		Backend:  remote,
	})
	bindForms(formsSvc, catalogSvc, sessionSvc, remote)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.VisitorKey)
	r.Use(middleware.AuthContext(tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Rutas por módulo
	catalog.RegisterRoutes(r, catalogSvc)
	support.RegisterRoutes(r, supportSvc)

	r.Route("/{variant}", func(vr chi.Router) {
		vr.Use(navigator.VariantCtx(navSvc))
		// cada portal tiene su propia sesión y drafts para el mismo navegador
		vr.Use(middleware.ScopeVisitor(func(r *http.Request) string {
			return chi.URLParam(r, "variant")
		}))

		session.RegisterRoutes(vr, sessionSvc)
		navigator.RegisterRoutes(vr, navSvc)
		wizard.RegisterRoutes(vr, formsSvc, navSvc)
	})

	log.Info("router ready", map[string]any{
		"catalog":  storeName(opts.DB != nil, "postgres"),
		"sessions": storeName(opts.Redis != nil, "redis"),
		"remote":   remoteName(remote),
	})

	return &App{Handler: r, forms: formsSvc}, nil
}

// newRemote: con REMOTE_BASE_URL usa el backend HTTP, si no el mock con latencia.
func newRemote(cfg config.Config) (backend.Backend, error) {
	if cfg.Remote.BaseURL == "" {
		return mock.New(mock.Options{
			Fast: cfg.Latency.Fast.Std(),
			Slow: cfg.Latency.Slow.Std(),
		}), nil
	}
	c, err := httpbackend.NewClient(httpbackend.Config{
		BaseURL: cfg.Remote.BaseURL,
		APIKey:  cfg.Remote.APIKey,
		Timeout: cfg.Remote.Timeout.Std(),
	})
	if err != nil {
		return nil, fmt.Errorf("remote backend: %w", err)
	}
	return c, nil
}

func storeName(external bool, name string) string {
	if external {
		return name
	}
	return "memory"
}

func remoteName(b backend.Backend) string {
	switch b.(type) {
	case *mock.Client:
		return "mock"
	case *httpbackend.Client:
		return "http"
	default:
		return fmt.Sprintf("%T", b)
	}
}
