package services

import (
	"go.uber.org/zap"

	"ecoandino/pkg/utils"
)

// storageFailure logs an unexpected repository error and hides it from the
// caller behind utils.ErrDatabaseError.
func storageFailure(log *zap.Logger, op string, err error) error {
	log.Error(op, zap.Error(err))
	return utils.ErrDatabaseError
}
