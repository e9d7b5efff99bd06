package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/DsDac0/Website/domain/repositories"
)

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repositories.ErrNotFound
	}
	return err
}
