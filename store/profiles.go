package store

import (
	"context"
	"fmt"

	"github.com/buzkaaclicker/social"
)

type Profiles struct {
	backend Backend
}

var _ social.ProfileStore = (*Profiles)(nil)

func profilesTable(tx Tx) Table[social.Profile] {
	return tx.Profiles()
}

func (s *Profiles) FindMany(ctx context.Context, filters ...social.Filter) ([]social.Profile, error) {
	profiles, err := scan(s.backend, profilesTable, filters)
	if err != nil {
		return nil, fmt.Errorf("scan profiles: %w", err)
	}
	return profiles, nil
}

func (s *Profiles) FindOne(ctx context.Context, filters ...social.Filter) (social.Profile, bool, error) {
	profile, ok, err := findOne(s.backend, profilesTable, filters)
	if err != nil {
		return social.Profile{}, false, fmt.Errorf("scan profiles: %w", err)
	}
	return profile, ok, nil
}

func (s *Profiles) ById(ctx context.Context, id string) (social.Profile, error) {
	profile, err := byId(s.backend, profilesTable, id, social.ErrProfileNotFound)
	if err != nil {
		return social.Profile{}, wrap(err, "get profile")
	}
	return profile, nil
}

func (s *Profiles) Create(ctx context.Context, profile social.Profile) (social.Profile, error) {
	profile.Id = newId()

	var created social.Profile
	err := s.backend.Update(func(tx Tx) error {
		existing, err := tx.Profiles().Scan(social.Equals(social.KeyUserId, profile.UserId))
		if err != nil {
			return fmt.Errorf("scan profiles: %w", err)
		}
		if len(existing) > 0 {
			return social.ErrProfileExists
		}
		if err := requireMemberType(tx, profile.MemberTypeId, social.ErrUnknownMemberType); err != nil {
			return err
		}
		if _, err := requireUser(tx, profile.UserId, social.ErrUnknownUser); err != nil {
			return err
		}
		created, err = tx.Profiles().Insert(profile)
		return err
	})
	if err != nil {
		return social.Profile{}, wrap(err, "insert profile")
	}
	return created, nil
}

func (s *Profiles) Change(ctx context.Context, id string, change social.ProfileChange) (social.Profile, error) {
	var changed social.Profile
	err := s.backend.Update(func(tx Tx) error {
		if _, ok, err := tx.Profiles().ById(id); err != nil {
			return fmt.Errorf("lookup profile: %w", err)
		} else if !ok {
			return social.ErrProfileNotFound
		}
		if change.MemberTypeId != nil {
			if err := requireMemberType(tx, *change.MemberTypeId, social.ErrUnknownMemberType); err != nil {
				return err
			}
		}
		var err error
		changed, _, err = tx.Profiles().Update(id, change.Apply)
		if err != nil {
			return fmt.Errorf("update profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return social.Profile{}, wrap(err, "change profile")
	}
	return changed, nil
}

func (s *Profiles) Delete(ctx context.Context, id string) (social.Profile, error) {
	var deleted social.Profile
	err := s.backend.Update(func(tx Tx) error {
		var (
			ok  bool
			err error
		)
		deleted, ok, err = tx.Profiles().Remove(id)
		if err != nil {
			return fmt.Errorf("remove profile: %w", err)
		}
		if !ok {
			return social.ErrProfileNotFound
		}
		return nil
	})
	if err != nil {
		return social.Profile{}, wrap(err, "delete profile")
	}
	return deleted, nil
}
