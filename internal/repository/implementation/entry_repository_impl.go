package implementation

import (
	"context"
	"errors"

	"echoverse-be/internal/entity"
	"echoverse-be/internal/mapper"
	"echoverse-be/internal/model"
	"echoverse-be/internal/repository/contract"
	"echoverse-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EntryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EntryMapper
}

func NewEntryRepository(db *gorm.DB) contract.EntryRepository {
	return &EntryRepositoryImpl{
		db:     db,
		mapper: mapper.NewEntryMapper(),
	}
}

func (r *EntryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EntryRepositoryImpl) Create(ctx context.Context, entry *entity.Entry) error {
	modelEntry := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Create(modelEntry).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(modelEntry)
	return nil
}

func (r *EntryRepositoryImpl) Update(ctx context.Context, entry *entity.Entry) error {
	modelEntry := r.mapper.ToModel(entry)
	if err := r.db.WithContext(ctx).Save(modelEntry).Error; err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(modelEntry)
	return nil
}

func (r *EntryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Entry{}).Error
}

func (r *EntryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Entry, error) {
	var modelEntry model.Entry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelEntry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelEntry), nil
}

func (r *EntryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Entry, error) {
	var modelEntries []*model.Entry
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelEntries).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelEntries), nil
}

func (r *EntryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Entry{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
