package postgres

import (
	"testing"
	"time"

	"tutoria/internal/domain/entity"
	"tutoria/internal/infra/persistence/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestUserMappers(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	m := &model.UserModel{ID: 7, Nome: "Ana", Email: "ana@example.com", Senha: "hash", CreatedAt: now, UpdatedAt: now}

	user := toUserDomain(m)
	assert.Equal(t, &entity.User{
		ID: 7, Name: "Ana", Email: "ana@example.com", PasswordHash: "hash", CreatedAt: now, UpdatedAt: now,
	}, user)

	back := fromUserDomain(user)
	assert.Equal(t, int64(7), back.ID)
	assert.Equal(t, "Ana", back.Nome)
	assert.Equal(t, "hash", back.Senha)

	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestUserModel_TableName(t *testing.T) {
	assert.Equal(t, "usuarios", model.UserModel{}.TableName())
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, want: true},
		{name: "pg error", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), want: true},
		{name: "flattened message", err: errors.New(`ERROR: duplicate key value violates unique constraint "usuarios_email_key"`), want: true},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: false},
		{name: "plain", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "nome"`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("timeout")))
	assert.False(t, isNotNullConstraintViolation(nil))
}
