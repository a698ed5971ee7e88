package setting

import "context"

// SettingRepository - interface for the settings table
type SettingRepository interface {
	Create(ctx context.Context, s Setting) (Setting, error)
	GetByID(ctx context.Context, id string) (Setting, error)
	GetByKey(ctx context.Context, key string) (Setting, error)
	List(ctx context.Context) ([]Setting, error)
	ListByCategory(ctx context.Context, category string) ([]Setting, error)
	ListCategories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, s Setting) error
	Delete(ctx context.Context, id string) error
}
