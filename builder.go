package builder

import (
	"context"
	"os"

	projectscmd "github.com/goliatone/go-builder/internal/commands/projects"
	"github.com/goliatone/go-builder/internal/logging"
	"github.com/goliatone/go-builder/internal/logging/gologger"
	"github.com/goliatone/go-builder/internal/projects"
	"github.com/goliatone/go-builder/pkg/interfaces"
	"github.com/goliatone/go-builder/project"
	"github.com/goliatone/go-builder/sections"
	"github.com/goliatone/go-builder/templates"
	"github.com/uptrace/bun"
)

// ProjectService exports the project persistence contract for consumers of
// the builder package.
type ProjectService = projects.Service

// ProjectRepository exports the project repository contract.
type ProjectRepository = projects.ProjectRepository

// Module is the top level builder runtime façade: the section catalog, the
// template gallery, the editing store, and draft persistence wired together
// from one configuration.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	sections  *sections.Registry
	templates *templates.Registry
	projects  *projects.Service
	store     *Store
	db        *bun.DB

	saveCmd    *projectscmd.SaveProjectHandler
	publishCmd *projectscmd.PublishProjectHandler
	deleteCmd  *projectscmd.DeleteProjectHandler

	repoOverride projects.ProjectRepository
}

// Option overrides parts of the default wiring.
type Option func(*Module)

// WithLoggerProvider supplies a host-owned logger provider, taking
// precedence over the Logging config section.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		if provider != nil {
			m.provider = provider
		}
	}
}

// WithSectionRegistry replaces the built-in section catalog.
func WithSectionRegistry(registry *sections.Registry) Option {
	return func(m *Module) {
		if registry != nil {
			m.sections = registry
		}
	}
}

// WithTemplateRegistry replaces the built-in template packs.
func WithTemplateRegistry(registry *templates.Registry) Option {
	return func(m *Module) {
		if registry != nil {
			m.templates = registry
		}
	}
}

// WithProjectRepository supplies a host-owned repository, taking precedence
// over the Storage config section.
func WithProjectRepository(repo projects.ProjectRepository) Option {
	return func(m *Module) {
		if repo != nil {
			m.repoOverride = repo
		}
	}
}

// New constructs a builder module from the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Module{
		cfg:       cfg,
		sections:  sections.DefaultRegistry(),
		templates: templates.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.provider == nil && cfg.Logging.Enabled {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}

	if cfg.Templates.Dir != "" {
		if err := templates.LoadDir(m.templates, os.DirFS(cfg.Templates.Dir), "."); err != nil {
			return nil, err
		}
	}

	repo := m.repoOverride
	if repo == nil {
		switch cfg.Storage.Driver {
		case StorageSQLite:
			db, err := projects.NewSQLiteDB(cfg.Storage.DSN)
			if err != nil {
				return nil, err
			}
			if err := projects.EnsureSchema(context.Background(), db); err != nil {
				db.Close()
				return nil, err
			}
			m.db = db
			repo = projects.NewBunProjectRepository(db)
		default:
			repo = projects.NewMemoryProjectRepository()
		}
	}
	m.projects = projects.NewService(repo,
		projects.WithLogger(logging.ProjectsLogger(m.provider)),
	)

	cmdLogger := logging.CommandsLogger(m.provider)
	m.saveCmd = projectscmd.NewSaveProjectHandler(m.projects, cmdLogger)
	m.publishCmd = projectscmd.NewPublishProjectHandler(m.projects, cmdLogger)
	m.deleteCmd = projectscmd.NewDeleteProjectHandler(m.projects, cmdLogger)

	storeOpts := []StoreOption{
		WithRegistry(m.sections),
		WithStoreLogger(logging.StoreLogger(m.provider)),
		WithHistoryDepth(cfg.History.Depth),
	}
	if cfg.Features.Autosave {
		storeOpts = append(storeOpts, WithSaver(SaverFunc(m.projects.Save)))
	}
	m.store = NewStore(storeOpts...)

	return m, nil
}

// Sections returns the section manifest registry.
func (m *Module) Sections() *sections.Registry {
	return m.sections
}

// Templates returns the template pack registry.
func (m *Module) Templates() *templates.Registry {
	return m.templates
}

// Projects returns the project persistence service.
func (m *Module) Projects() *ProjectService {
	return m.projects
}

// Store returns the editing store.
func (m *Module) Store() *Store {
	return m.store
}

// ApplyTemplate resolves a template pack, materializes its composition, and
// dispatches the merge plus the pack's default theme. Mirrors what the
// gallery panel does when the user confirms a pick.
func (m *Module) ApplyTemplate(ctx context.Context, templateKey string) error {
	def, err := m.templates.Get(templateKey)
	if err != nil {
		return err
	}
	built, err := templates.BuildSections(m.sections, def)
	if err != nil {
		return err
	}
	if err := m.store.Dispatch(ctx, ApplyTemplate{TemplateID: def.Key, Sections: built}); err != nil {
		return err
	}
	if def.DefaultThemeID == "" {
		return nil
	}
	return m.store.Dispatch(ctx, ApplyTheme{ThemeID: def.DefaultThemeID})
}

// SaveProject persists a draft document through the save command handler, so
// host-initiated saves share validation, timeouts, and logging with every
// other command.
func (m *Module) SaveProject(ctx context.Context, p *project.Project) error {
	return m.saveCmd.Execute(ctx, projectscmd.SaveProjectCommand{Project: p})
}

// Publish promotes the stored project's current draft.
func (m *Module) Publish(ctx context.Context, projectID string) error {
	return m.publishCmd.Execute(ctx, projectscmd.PublishProjectCommand{ProjectID: projectID})
}

// DeleteProject removes a stored project.
func (m *Module) DeleteProject(ctx context.Context, projectID string) error {
	return m.deleteCmd.Execute(ctx, projectscmd.DeleteProjectCommand{ProjectID: projectID})
}

// Close releases module-owned resources. Host-provided repositories and
// databases are left open.
func (m *Module) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
