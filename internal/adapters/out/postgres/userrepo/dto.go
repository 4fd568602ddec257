// Package userrepo provides data transfer objects and mapping functions for
// user persistence. Users are reference data for the delivery lifecycle:
// the core looks them up for assignment and ownership checks.
package userrepo

import (
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string
	FullName string
	Role     int `gorm:"index"`
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user entity to its database representation.
func fromDomain(user *account.User) UserDTO {
	return UserDTO{
		ID:       user.ID().Bytes(),
		Email:    user.Email(),
		FullName: user.FullName(),
		Role:     int(user.Role()),
	}
}

// toDomain converts a database DTO to a user entity using RestoreUser.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, dto.Email, dto.FullName, account.Role(dto.Role))
}
