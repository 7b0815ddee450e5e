package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alien2112/menu-rwad-sub005/domains/settings"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingModel struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (settingModel) TableName() string {
	return "settings"
}

type SettingsGormRepository struct {
	db *gorm.DB
}

var _ settings.ISettingsRepository = (*SettingsGormRepository)(nil)

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var m settingModel
	if err := r.db.WithContext(ctx).First(&m, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return m.Value, true, nil
}

func (r *SettingsGormRepository) Set(ctx context.Context, key, value string) error {
	m := settingModel{Key: key, Value: value, UpdatedAt: time.Now()}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
}

func (r *SettingsGormRepository) All(ctx context.Context) (map[string]string, error) {
	var models []settingModel
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}

	out := make(map[string]string, len(models))
	for _, m := range models {
		out[m.Key] = m.Value
	}
	return out, nil
}
