package service

import (
	"github.com/tripscout/backend/internal/domain"
)

// ProfileRepository is re-exported from domain for convenience
type ProfileRepository = domain.ProfileRepository
