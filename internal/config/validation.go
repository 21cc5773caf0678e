// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate checks that the merged configuration carries everything the
// binary identified by role needs at startup.
func (cfg *StructuredConfig) Validate(role Role) error {
	switch role {
	case RoleGateway:
		if err := cfg.validateToken(); err != nil {
			return err
		}
		if cfg.Server.HTTPAddress == "" {
			return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
		}
		if cfg.Adapter.UsersAddress == "" || cfg.Adapter.PostsGRPCAddress == "" {
			return fmt.Errorf("%w: users and posts addresses are required", ErrInvalidAdapterConfigs)
		}
		if cfg.Adapter.RequestTimeout <= 0 {
			return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
		}
	case RoleUsers:
		if err := cfg.validateToken(); err != nil {
			return err
		}
		if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
			return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
		}
		if cfg.App.IdentityField != IdentityFieldLogin && cfg.App.IdentityField != IdentityFieldUsername {
			return fmt.Errorf("%w: identity field must be %q or %q", ErrInvalidAppConfigs, IdentityFieldLogin, IdentityFieldUsername)
		}
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
		if cfg.Server.HTTPAddress == "" {
			return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
		}
	case RolePosts:
		if cfg.Storage.DB.DSN == "" {
			return ErrInvalidStorageConfigs
		}
		if cfg.Server.GRPCAddress == "" {
			return fmt.Errorf("%w: grpc address is required", ErrInvalidServerConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidAppConfigs, role)
	}

	return nil
}

func (cfg *StructuredConfig) validateToken() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	return nil
}
