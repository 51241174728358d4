package source

import (
	"context"

	"github.com/go-gota/gota/dataframe"
)

// Provider abstracts where the vehicle table comes from.
type Provider interface {
	Load(ctx context.Context) (dataframe.DataFrame, error)
}
