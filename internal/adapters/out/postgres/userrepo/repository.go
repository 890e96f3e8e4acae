package userrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ecomove/internal/core/domain/model/kernel"
	"ecomove/internal/core/domain/model/user"
	"ecomove/internal/core/ports"
)

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create saves a new user and returns it with its assigned identifier.
func (r *GormUserRepository) Create(ctx context.Context, aggregate *user.User) (*user.User, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// FindByID retrieves a user by identifier, nil when absent.
func (r *GormUserRepository) FindByID(ctx context.Context, id kernel.ID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.findOne(ctx, "id = ?", id.Int64())
}

// FindByEmail retrieves a user by normalized e-mail, nil when absent.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	if err := email.Validate(); err != nil {
		return nil, err
	}

	return r.findOne(ctx, "email = ?", email.Value())
}

// FindByDocument retrieves a user by document number, nil when absent.
func (r *GormUserRepository) FindByDocument(
	ctx context.Context,
	documentNumber kernel.DocumentNumber,
) (*user.User, error) {
	if err := documentNumber.Validate(); err != nil {
		return nil, err
	}

	return r.findOne(ctx, "document_number = ?", documentNumber.Value())
}

// Update saves an existing user.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes a user by identifier.
func (r *GormUserRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// FindAll retrieves one page of users ordered by identifier.
func (r *GormUserRepository) FindAll(
	ctx context.Context,
	request ports.PageRequest,
) (ports.Page[*user.User], error) {
	request = request.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&UserDTO{}).Count(&total).Error; err != nil {
		return ports.Page[*user.User]{}, err
	}

	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Limit(request.Limit).
		Offset(request.Offset()).
		Find(&dtos).Error
	if err != nil {
		return ports.Page[*user.User]{}, err
	}

	users := make([]*user.User, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return ports.Page[*user.User]{}, convErr
		}
		users = append(users, aggregate)
	}

	return ports.NewPage(users, total, request), nil
}

func (r *GormUserRepository) findOne(ctx context.Context, condition string, value any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, condition, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
