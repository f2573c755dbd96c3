package errprocess

import (
	"fmt"

	"gamevault/pkg/logger"

	"go.uber.org/zap"
)

// Wrap logs err with the operation name and returns it wrapped, keeping errors.Is working
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	logger.Log.Error(op, zap.Error(err))
	return fmt.Errorf("%s: %w", op, err)
}
