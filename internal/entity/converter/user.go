package converter

import (
	"blogs/internal/entity/db"
	"blogs/internal/entity/dto"
)

// UserToSummary converts a db.User to dto.UserSummary.
func UserToSummary(u *db.User) dto.UserSummary {
	if u == nil {
		return dto.UserSummary{}
	}
	return dto.UserSummary{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role,
		Bio:        u.Bio,
		Avatar:     u.Avatar,
		IsVerified: u.IsVerified,
		VerifiedAt: u.VerifiedAt,
		IsBanned:   u.IsBanned,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// UsersToSummaries converts a slice of db.User to dto.UserSummary.
func UsersToSummaries(users []db.User) []dto.UserSummary {
	summaries := make([]dto.UserSummary, len(users))
	for i := range users {
		summaries[i] = UserToSummary(&users[i])
	}
	return summaries
}

// UserToAuthor returns the public author view, or nil when u is not loaded.
func UserToAuthor(u *db.User) *dto.AuthorSummary {
	if u == nil || u.ID == 0 {
		return nil
	}
	return &dto.AuthorSummary{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: u.Avatar,
		Bio:    u.Bio,
	}
}

// UserToProfile converts a db.User to its public profile.
func UserToProfile(u *db.User) dto.Profile {
	if u == nil {
		return dto.Profile{}
	}
	return dto.Profile{Name: u.Name, Bio: u.Bio, Avatar: u.Avatar}
}
