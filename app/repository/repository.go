// Package repository berisi akses data PostgreSQL (gorm) dan MongoDB.
// Setiap repository diekspos sebagai interface supaya service bisa ditest
// dengan mock (lihat folder mocks).
package repository

//go:generate mockgen -source=user_repository.go -destination=mocks/mock_user_repository.go -package=mocks
//go:generate mockgen -source=project_repository.go -destination=mocks/mock_project_repository.go -package=mocks
//go:generate mockgen -source=requirements_repository.go -destination=mocks/mock_requirements_repository.go -package=mocks
//go:generate mockgen -source=invitation_repository.go -destination=mocks/mock_invitation_repository.go -package=mocks
//go:generate mockgen -source=review_repository.go -destination=mocks/mock_review_repository.go -package=mocks
//go:generate mockgen -source=rubrik_repository.go -destination=mocks/mock_rubrik_repository.go -package=mocks
//go:generate mockgen -source=semester_repository.go -destination=mocks/mock_semester_repository.go -package=mocks
//go:generate mockgen -source=document_repository.go -destination=mocks/mock_document_repository.go -package=mocks
//go:generate mockgen -source=activity_repository.go -destination=mocks/mock_activity_repository.go -package=mocks
//go:generate mockgen -source=report_repository.go -destination=mocks/mock_report_repository.go -package=mocks

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"capstone-backend/app/apperror"
)

// Pagination parameter list; Limit <= 0 berarti default 20, maksimal 100.
type Pagination struct {
	Page  int
	Limit int
}

func (p Pagination) normalize() (offset, limit int) {
	limit = p.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit, limit
}

// translate menerjemahkan error gorm ke error domain; error lain dibungkus
// dengan konteks operasi.
func translate(err error, resource, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFound(resource)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflict(resource + " sudah ada")
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperror.NewConflict(resource + " masih dipakai data lain")
	}
	return errors.Wrap(err, op)
}
