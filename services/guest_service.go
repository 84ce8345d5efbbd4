package services // Use-case layer; owns the guest collection, not HTTP/DB details.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"CeibaCheckIn/core"
	"CeibaCheckIn/global"
	"CeibaCheckIn/models"
	"CeibaCheckIn/repositories"
	"CeibaCheckIn/utils/redislog"
	"CeibaCheckIn/utils/spreadsheet"
)

var (
	ErrNameRequired      = errors.New("name is required")
	ErrGuestNotFound     = errors.New("guest not found")
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// Export formats accepted by GuestService.Export.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	exportSheet     = "Invitados"
)

// GuestService lists the use-cases the guest handlers call.
type GuestService interface {
	Boot(ctx context.Context) (int, error) // Load the stored collection or fall back to the seed.

	List(ctx context.Context, query string) (*models.GuestList, error)
	Get(ctx context.Context, name string) (*models.Guest, error)
	Upsert(ctx context.Context, req models.GuestRequest) (*models.Guest, error)
	SetAttendance(ctx context.Context, name string, attended bool) (*models.Guest, error)
	Remove(ctx context.Context, name string) error

	Import(ctx context.Context, filename string, r io.Reader) (int, error) // Replaces the collection.
	Export(ctx context.Context, format string) (*models.ExportFile, error)
}

// guestService keeps the working collection in memory and writes it through to repo.
type guestService struct {
	repo     repositories.GuestRepository
	seedPath string
	log      *redislog.Logger // nil-safe

	mu     sync.Mutex
	guests []models.Guest
}

// NewGuestService wires the store and the seed file used when nothing is stored.
func NewGuestService(repo repositories.GuestRepository, seedPath string, rlog *redislog.Logger) GuestService {
	return &guestService{repo: repo, seedPath: seedPath, log: rlog, guests: []models.Guest{}}
}

// ---------------- Boot ----------------

func (s *guestService) Boot(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.repo.Load(ctx)
	if err == nil {
		s.guests = stored
		s.log.Info("guests loaded from store", map[string]string{"count": fmt.Sprint(len(stored))})
		return len(stored), nil
	}
	if !repositories.IsNotStored(err) {
		s.log.Warn("guest store load failed, using seed", map[string]string{"err": err.Error()})
	}

	s.guests = s.readSeed()
	if err := s.repo.Save(ctx, s.guests); err != nil {
		s.log.Error("seed save failed", map[string]string{"err": err.Error()})
		return len(s.guests), fmt.Errorf("save seed: %w", err)
	}
	s.log.Info("guests seeded", map[string]string{"count": fmt.Sprint(len(s.guests)), "seed": s.seedPath})
	return len(s.guests), nil
}

// readSeed decodes the bundled CSV. A missing or unreadable seed is an empty list.
func (s *guestService) readSeed() []models.Guest {
	if s.seedPath == "" {
		return []models.Guest{}
	}
	data, err := os.ReadFile(s.seedPath)
	if err != nil {
		s.log.Warn("seed unreadable", map[string]string{"seed": s.seedPath, "err": err.Error()})
		return []models.Guest{}
	}
	return core.Dedupe(core.Decode(stripBOM(string(data))))
}

// ---------------- Reads ----------------

func (s *guestService) List(_ context.Context, query string) (*models.GuestList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matches := core.FilterByName(s.guests, query)
	items := make([]models.Guest, len(matches)) // copy; callers never see the live slice
	copy(items, matches)
	return &models.GuestList{Items: items, Total: len(s.guests), Query: strings.TrimSpace(query)}, nil
}

func (s *guestService) Get(_ context.Context, name string) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := core.FindByName(s.guests, core.CleanField(name))
	if !ok {
		return nil, ErrGuestNotFound
	}
	g := s.guests[i]
	return &g, nil
}

// ---------------- Mutations ----------------

// Upsert inserts a new guest at the front or replaces the one with the same name in place.
func (s *guestService) Upsert(ctx context.Context, req models.GuestRequest) (*models.Guest, error) {
	g := core.Normalize(models.Guest{Name: req.Name, Day1: req.Day1, Day2: req.Day2, Attended: req.Attended})
	if g.Name == "" {
		return nil, ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.guests = core.Upsert(s.guests, g)
	if err := s.persist(ctx, "upsert"); err != nil {
		return nil, err
	}
	s.log.Info("guest saved", map[string]string{"name": g.Name, "attended": fmt.Sprint(g.Attended)})
	return &g, nil
}

func (s *guestService) SetAttendance(ctx context.Context, name string, attended bool) (*models.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := core.FindByName(s.guests, core.CleanField(name))
	if !ok {
		s.log.Warn("attendance for unknown guest", map[string]string{"name": name})
		return nil, ErrGuestNotFound
	}
	g := s.guests[i]
	g.Attended = attended
	s.guests = core.Upsert(s.guests, g)
	if err := s.persist(ctx, "attendance"); err != nil {
		return nil, err
	}
	s.log.Info("attendance updated", map[string]string{"name": g.Name, "attended": fmt.Sprint(attended)})
	return &g, nil
}

func (s *guestService) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := core.Remove(s.guests, core.CleanField(name))
	if !ok {
		return ErrGuestNotFound
	}
	s.guests = next
	if err := s.persist(ctx, "remove"); err != nil {
		return err
	}
	s.log.Info("guest removed", map[string]string{"name": name})
	return nil
}

// Import decodes an uploaded list by extension and replaces the whole collection.
func (s *guestService) Import(ctx context.Context, filename string, r io.Reader) (int, error) {
	guests, err := DecodeFile(filename, r)
	if err != nil {
		s.log.Warn("import rejected", map[string]string{"file": filename, "err": err.Error()})
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.guests = guests
	if err := s.persist(ctx, "import"); err != nil {
		return 0, err
	}
	s.log.Info("guests imported", map[string]string{"file": filename, "count": fmt.Sprint(len(guests))})
	return len(guests), nil
}

// DecodeFile reads a guest list, picking the decoder from the filename extension:
// .csv/.txt text, .xlsx/.xlsm/.xls workbooks. Repeated names are folded.
func DecodeFile(filename string, r io.Reader) ([]models.Guest, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); {
	case ext == ".csv" || ext == ".txt":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read upload: %w", err)
		}
		return core.Dedupe(core.Decode(stripBOM(string(data)))), nil
	case spreadsheet.IsWorkbook(filename):
		rows, err := spreadsheet.ReadRows(r, filename)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
		}
		return core.Dedupe(core.DecodeRows(rows)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// persist writes the whole collection. Callers hold s.mu.
func (s *guestService) persist(ctx context.Context, op string) error {
	if err := s.repo.Save(ctx, s.guests); err != nil {
		s.log.Error("guest store save failed", map[string]string{"op": op, "err": err.Error()})
		return fmt.Errorf("save guests: %w", err)
	}
	return nil
}

// ---------------- Export ----------------

func (s *guestService) Export(_ context.Context, format string) (*models.ExportFile, error) {
	s.mu.Lock()
	snapshot := make([]models.Guest, len(s.guests))
	copy(snapshot, s.guests)
	s.mu.Unlock()

	f, err := Render(snapshot, format)
	if err != nil {
		s.log.Error("export failed", map[string]string{"format": format, "err": err.Error()})
		return nil, err
	}
	return f, nil
}

// Render encodes guests as csv (default) or xlsx.
func Render(guests []models.Guest, format string) (*models.ExportFile, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatCSV:
		return &models.ExportFile{Name: global.ExportCSVName, ContentType: csvContentType, Data: []byte(core.Encode(guests))}, nil
	case FormatXLSX:
		data, err := spreadsheet.WriteRows(exportSheet, core.Rows(guests))
		if err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
		return &models.ExportFile{Name: global.ExportXLSXName, ContentType: xlsxContentType, Data: data}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func stripBOM(text string) string {
	return strings.TrimPrefix(text, "\ufeff")
}
