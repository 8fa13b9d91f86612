package recommend

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/carbontrack/carbontrack/internal/records"
)

// UserRecords pairs a user with their activity history for batch
// recomputation.
type UserRecords struct {
	UserID  string
	Records []records.ActivityRecord
}

// UserRecommendations is the batch output for one user.
type UserRecommendations struct {
	UserID          string
	Recommendations []ScoredRecommendation
}

// BatchGenerate recomputes recommendations for many users. Each user's
// computation is independent, so work runs concurrently with a
// CPU-bound limit. Output order matches input order.
func (e *Engine) BatchGenerate(
	ctx context.Context,
	users []UserRecords,
	opts Options,
) ([]UserRecommendations, error) {
	out := make([]UserRecommendations, len(users))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, user := range users {
		i, user := i, user
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = UserRecommendations{
				UserID:          user.UserID,
				Recommendations: e.Generate(user.Records, opts),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
