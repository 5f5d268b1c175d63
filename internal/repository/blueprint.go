package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hvacdesign/planload/gen/ent"
	"github.com/hvacdesign/planload/gen/ent/blueprint"
	"github.com/hvacdesign/planload/internal/common"
)

type BlueprintRepository interface {
	// GetOrCreate resolves an upload to a blueprint row by content hash, so
	// re-dropping the same file never duplicates the record. The bool is
	// true when a new row was created.
	GetOrCreate(ctx context.Context, filename, sourcePath, contentHash string, pageCount int, sizeBytes int64) (*ent.Blueprint, bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Blueprint, error)
}

type blueprintRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewBlueprintRepository(entc *ent.Client, log *slog.Logger) BlueprintRepository {
	return &blueprintRepo{ent: entc, log: log}
}

func (r *blueprintRepo) GetOrCreate(ctx context.Context, filename, sourcePath, contentHash string, pageCount int, sizeBytes int64) (*ent.Blueprint, bool, error) {
	existing, err := r.ent.Blueprint.
		Query().
		Where(blueprint.ContentHash(contentHash)).
		Only(ctx)
	if err == nil {
		r.log.Info("blueprint already known", "blueprint_id", existing.ID, "filename", filename)
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, err
	}

	bp, err := r.ent.Blueprint.
		Create().
		SetFilename(filename).
		SetSourcePath(sourcePath).
		SetContentHash(contentHash).
		SetPageCount(pageCount).
		SetFileSizeBytes(sizeBytes).
		Save(ctx)
	if err != nil {
		r.log.Error("blueprint create failed", "filename", filename, "err", err)
		return nil, false, err
	}
	r.log.Info("blueprint created", "blueprint_id", bp.ID, "filename", filename, "pages", pageCount)
	return bp, true, nil
}

func (r *blueprintRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Blueprint, error) {
	bp, err := r.ent.Blueprint.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("blueprint %s: %w", id, common.ErrNotFound)
	}
	return bp, err
}
