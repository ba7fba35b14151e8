package record

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shogi_csa/internal/bootstrap"
	"shogi_csa/internal/domain/csa"
	"shogi_csa/internal/domain/record"
	errs "shogi_csa/internal/errors"
	"shogi_csa/internal/utils"
)

type RecordStore interface {
	NewID() string
	Save(ctx context.Context, rec record.Record) error
	Find(ctx context.Context, id string) (record.Record, error)
	AppendMove(ctx context.Context, id string, move record.MoveDoc) error
	CSAVersion(ctx context.Context, id string) (int64, error)
	BumpCSAVersion(ctx context.Context, id string) error
	CacheCSA(ctx context.Context, id string, version int64, text string) error
	CachedCSA(ctx context.Context, id string, version int64) (string, bool, error)
}

// SheetRenderer turns CSA text into a printable document.
type SheetRenderer interface {
	Render(w io.Writer, title string, csaText string) error
}

type RecordUseCase struct {
	store    RecordStore
	sheets   SheetRenderer
	log      *zap.SugaredLogger
	encoder  csa.Encoder
	validate bool
	workers  int
	charset  string
}

func NewRecordUseCase(store RecordStore, sheets SheetRenderer, cfg bootstrap.Config, log *zap.SugaredLogger) *RecordUseCase {
	workers := cfg.RenderWorkers
	if workers < 1 {
		workers = 1
	}
	return &RecordUseCase{
		store:    store,
		sheets:   sheets,
		log:      log,
		encoder:  csa.Encoder{PadHour: cfg.PadHour},
		validate: cfg.ValidateRecords,
		workers:  workers,
		charset:  cfg.OutputEncoding,
	}
}

func (u *RecordUseCase) check(g *csa.GameRecord) error {
	if !u.validate {
		return nil
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidRecord, err)
	}
	return nil
}

// Render converts and encodes a record without storing it.
func (u *RecordUseCase) Render(rec record.Record) (string, error) {
	g, err := rec.ToCSA()
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidRecord, err)
	}
	if err = u.check(g); err != nil {
		return "", err
	}
	return u.encoder.EncodeToString(g), nil
}

func (u *RecordUseCase) Create(ctx context.Context, rec record.Record) (id string, text string, err error) {
	text, err = u.Render(rec)
	if err != nil {
		return "", "", err
	}

	rec.ID = u.store.NewID()
	rec.CreatedAt = time.Now().UTC()
	if err = u.store.Save(ctx, rec); err != nil {
		return "", "", err
	}

	if err = u.store.CacheCSA(ctx, rec.ID, 0, text); err != nil {
		u.log.Errorf("failed to cache csa of record %s: %v", rec.ID, err)
	}
	return rec.ID, text, nil
}

func (u *RecordUseCase) Record(ctx context.Context, id string) (record.Record, error) {
	return u.store.Find(ctx, id)
}

// CSA returns the encoded record, rendering and caching it on a miss. The
// version is read before the record is loaded, so text rendered from a record
// that changes meanwhile lands under a version no reader asks for again.
func (u *RecordUseCase) CSA(ctx context.Context, id string) (string, error) {
	version, err := u.store.CSAVersion(ctx, id)
	versioned := err == nil
	if err != nil {
		u.log.Errorf("failed to read csa version of record %s: %v", id, err)
	} else {
		text, ok, err := u.store.CachedCSA(ctx, id, version)
		if err != nil {
			u.log.Errorf("failed to read csa cache of record %s: %v", id, err)
		} else if ok {
			return text, nil
		}
	}

	rec, err := u.store.Find(ctx, id)
	if err != nil {
		return "", err
	}
	g, err := rec.ToCSA()
	if err != nil {
		return "", fmt.Errorf("%w: stored record %s: %w", errs.ErrInternal, id, err)
	}
	text := u.encoder.EncodeToString(g)

	if !versioned {
		return text, nil
	}
	if err = u.store.CacheCSA(ctx, id, version, text); err != nil {
		u.log.Errorf("failed to cache csa of record %s: %v", id, err)
	}
	return text, nil
}

// AppendMove stores one more move list entry and returns the CSA lines it
// adds to the record.
func (u *RecordUseCase) AppendMove(ctx context.Context, id string, move record.MoveDoc) (string, error) {
	mr, err := move.ToCSA()
	if err != nil {
		return "", fmt.Errorf("%w: %w", errs.ErrInvalidRecord, err)
	}
	if u.validate {
		if err = mr.Validate(); err != nil {
			return "", fmt.Errorf("%w: %w", errs.ErrInvalidRecord, err)
		}
	}

	if err = u.store.AppendMove(ctx, id, move); err != nil {
		return "", err
	}
	if err = u.store.BumpCSAVersion(ctx, id); err != nil {
		u.log.Errorf("failed to invalidate csa cache of record %s: %v", id, err)
	}
	return mr.String(), nil
}

// Sheet writes the printable version of a stored record.
func (u *RecordUseCase) Sheet(ctx context.Context, id string, w io.Writer) error {
	rec, err := u.store.Find(ctx, id)
	if err != nil {
		return err
	}
	text, err := u.CSA(ctx, id)
	if err != nil {
		return err
	}
	return u.sheets.Render(w, sheetTitle(rec), text)
}

func sheetTitle(rec record.Record) string {
	var parts []string
	if p := rec.Metadata.BlackPlayer; p != nil {
		parts = append(parts, "+"+*p)
	}
	if p := rec.Metadata.WhitePlayer; p != nil {
		parts = append(parts, "-"+*p)
	}
	if e := rec.Metadata.Event; e != nil {
		parts = append(parts, *e)
	}
	if len(parts) == 0 {
		return rec.ID
	}
	return strings.Join(parts, " ")
}

// RenderBatch encodes records concurrently. The result keeps input order.
func (u *RecordUseCase) RenderBatch(ctx context.Context, records []*csa.GameRecord) ([]string, error) {
	out := make([]string, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)
	for i, rec := range records {
		i, rec := i, rec
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := u.check(rec); err != nil {
				return fmt.Errorf("record %d: %w", i+1, err)
			}
			out[i] = u.encoder.EncodeToString(rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	u.log.Infof("rendered %d records", len(records))
	return out, nil
}

// Encode writes text in the configured output encoding.
func (u *RecordUseCase) Encode(w io.Writer, text string) error {
	cw, err := utils.NewCharsetWriter(w, u.charset)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(cw, text); err != nil {
		return err
	}
	return cw.Close()
}

func (u *RecordUseCase) ContentType() string {
	return utils.ContentType(u.charset)
}
