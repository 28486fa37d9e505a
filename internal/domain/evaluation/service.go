package evaluation

import (
	"context"
	"errors"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/user"
	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"
	"github.com/arindama-pkmk/ta-server-sub000/internal/logger"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Window policy: monthly ratios are designed for roughly one-month windows.
// Short windows only make flow aggregates noisy, so they warn; long windows
// leave the design envelope and are rejected.
const (
	minWindowDays = 28
	maxWindowDays = 92
)

// Service is the evaluation orchestrator: it pulls windowed transactions
// and the active catalog, runs aggregation → calculation → classification
// per ratio sequentially, and upserts one snapshot per ratio. Ratios are
// processed one at a time so logging and upsert order stay deterministic.
type Service struct {
	Repository      Repository
	TransactionRepo transaction.Repository
	RatioService    *ratio.Service
	UserService     *user.Service
	Aggregator      *Aggregator
}

func NewService(
	repo Repository,
	transactionRepo transaction.Repository,
	ratioSvc *ratio.Service,
	userSvc *user.Service,
	aggregator *Aggregator,
) *Service {
	return &Service{
		Repository:      repo,
		TransactionRepo: transactionRepo,
		RatioService:    ratioSvc,
		UserService:     userSvc,
		Aggregator:      aggregator,
	}
}

// CalculateAndStore evaluates every active ratio for the user over
// [startDate, endDate] and upserts the snapshots. One failing ratio is
// logged and skipped so a bad definition never blocks the batch; the
// returned slice holds the ratios that succeeded.
func (s *Service) CalculateAndStore(ctx context.Context, userID ulid.ULID, startDate, endDate time.Time) ([]*SingleRatioResult, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, err
	}

	window, err := validateWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	windowTxs, err := s.TransactionRepo.GetInWindow(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	ratios, err := s.RatioService.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	calculatedAt := time.Now()
	results := make([]*SingleRatioResult, 0, len(ratios))

	for _, r := range ratios {
		components := r.ActiveComponents()

		// A catalog entry whose component chains were all soft-deleted has
		// nothing to aggregate. The liquidity ratio still evaluates (its
		// zero-denominator rule gives 0/0 a defined answer); everything else
		// is skipped.
		if len(components) == 0 && r.Policy != ratio.PolicyLiquidity {
			logger.Warn().Str("ratio_code", r.Code).Msg("rasio tanpa komponen aktif, dilewati")
			continue
		}

		numerator, err := s.Aggregator.SideTotal(ctx, userID, components, ratio.SideNumerator, window, windowTxs)
		if err != nil {
			logger.Error().Err(err).Str("ratio_code", r.Code).Msg("gagal menghitung pembilang, rasio dilewati")
			continue
		}

		denominator, err := s.Aggregator.SideTotal(ctx, userID, components, ratio.SideDenominator, window, windowTxs)
		if err != nil {
			logger.Error().Err(err).Str("ratio_code", r.Code).Msg("gagal menghitung penyebut, rasio dilewati")
			continue
		}

		value := Value(r, numerator, denominator)
		status := Classify(value, r)
		stored := ClampStored(value)

		snapshot := &Result{
			Id:           pkg.GenerateULIDObject(),
			UserId:       userID,
			RatioId:      r.Id,
			StartDate:    window.Start,
			EndDate:      window.End,
			Value:        stored,
			Status:       status,
			CalculatedAt: calculatedAt,
		}

		if err := s.Repository.Upsert(ctx, snapshot); err != nil {
			logger.Error().Err(err).Str("ratio_code", r.Code).Msg("gagal menyimpan hasil perhitungan, rasio dilewati")
			continue
		}

		results = append(results, &SingleRatioResult{
			RatioId:           r.Id,
			RatioCode:         r.Code,
			RatioTitle:        r.Title,
			Value:             stored,
			Status:            status,
			IdealRangeDisplay: IdealRangeDisplay(r),
		})
	}

	return results, nil
}

// History lists stored snapshots for the user, newest window first.
func (s *Service) History(ctx context.Context, userID ulid.ULID, from, to *time.Time, pagination *pkg.PaginationParams) ([]*Result, int64, error) {
	if err := s.ensureUserExists(ctx, userID); err != nil {
		return nil, 0, err
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, 0, appErrors.NewValidationError("endDate", "tanggal akhir harus setelah tanggal awal")
	}

	results, total, err := s.Repository.FindHistory(ctx, userID, from, to, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return results, total, nil
}

// GetDetail re-expands a stored snapshot for display: it re-runs the same
// side aggregation over the snapshot's stored window (not "now") and adds
// the conceptual sums.
func (s *Service) GetDetail(ctx context.Context, evaluationID, userID ulid.ULID) (*Detail, error) {
	snapshot, err := s.Repository.FindByIDAndUser(ctx, evaluationID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrEvaluationNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	r, err := s.RatioService.GetByID(ctx, snapshot.RatioId)
	if err != nil {
		return nil, err
	}

	window := Window{Start: snapshot.StartDate, End: snapshot.EndDate}

	windowTxs, err := s.TransactionRepo.GetInWindow(ctx, userID, window.Start, window.End)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	components := r.ActiveComponents()

	numerator, err := s.Aggregator.SideTotal(ctx, userID, components, ratio.SideNumerator, window, windowTxs)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	denominator, err := s.Aggregator.SideTotal(ctx, userID, components, ratio.SideDenominator, window, windowTxs)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	breakdown, err := s.Aggregator.ConceptSums(ctx, userID, window, windowTxs)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return &Detail{
		Id:                    snapshot.Id,
		RatioId:               r.Id,
		RatioCode:             r.Code,
		RatioTitle:            r.Title,
		StartDate:             snapshot.StartDate,
		EndDate:               snapshot.EndDate,
		Value:                 snapshot.Value,
		Status:                snapshot.Status,
		CalculatedAt:          snapshot.CalculatedAt,
		IdealRangeDisplay:     IdealRangeDisplay(r),
		CalculatedNumerator:   numerator.InexactFloat64(),
		CalculatedDenominator: denominator.InexactFloat64(),
		BreakdownComponents:   breakdown,
	}, nil
}

func validateWindow(startDate, endDate time.Time) (Window, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return Window{}, appErrors.NewValidationError("startDate", "tanggal awal dan akhir wajib diisi")
	}
	if endDate.Before(startDate) {
		return Window{}, appErrors.NewValidationError("endDate", "tanggal akhir harus setelah tanggal awal")
	}

	window := Window{Start: startDate, End: endDate}
	days := window.Days()

	if days > maxWindowDays {
		return Window{}, appErrors.NewValidationError("endDate", "rentang tanggal maksimal 92 hari")
	}
	if days < minWindowDays {
		logger.Warn().
			Int("days", days).
			Msg("rentang evaluasi kurang dari 28 hari, hasil rasio arus bisa bising")
	}

	return window, nil
}

func (s *Service) ensureUserExists(ctx context.Context, userID ulid.ULID) error {
	if s.UserService == nil {
		return appErrors.ErrInternalServer.WithError(errors.New("user service not configured"))
	}
	if _, err := s.UserService.GetByID(ctx, userID); err != nil {
		return appErrors.ErrUserNotFound
	}
	return nil
}
