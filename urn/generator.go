package urn

import (
	"log/slog"

	"github.com/lehigh-university-libraries/urnpubid/publication"
)

// Generator produces URNs for publishable objects.
type Generator struct {
	presses PressResolver
	configs ConfigSource
	store   Store
	logger  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// NewGenerator creates a Generator over the given collaborators.
func NewGenerator(presses PressResolver, configs ConfigSource, store Store, opts ...Option) *Generator {
	g := &Generator{
		presses: presses,
		configs: configs,
		store:   store,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GetPubID returns the URN for obj, generating it when none is stored yet.
// Unless preview is set, a newly generated URN is written back to the store.
// The boolean is false when no identifier can be produced.
func (g *Generator) GetPubID(obj publication.Object, preview bool) (string, bool) {
	typ := publication.TypeOf(obj)
	if typ == publication.ObjectTypeUnspecified {
		return "", false
	}

	press, ok := g.presses.Press(obj.ContextID())
	if !ok || press == nil {
		return "", false
	}

	// A stored URN is never regenerated.
	if stored, ok := g.store.StoredPubID(obj); ok && stored != "" {
		return stored, true
	}

	cfg, ok := g.configs.Config(press.ID)
	if !ok || cfg.Prefix == "" {
		return "", false
	}

	suffix := Suffix(cfg, press, obj)
	if suffix == "" {
		return "", false
	}

	urn := cfg.Prefix + suffix

	if !preview {
		if err := g.store.SetStoredPubID(obj, typ, urn); err != nil {
			g.logger.Warn("storing urn",
				"type", typ.String(),
				"id", obj.ObjectID(),
				"urn", urn,
				"error", err)
		}
	}

	return urn, true
}
