package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/buzkaaclicker/social"
)

type MemberTypes struct {
	backend Backend
}

var _ social.MemberTypeStore = (*MemberTypes)(nil)

func memberTypesTable(tx Tx) Table[social.MemberType] {
	return tx.MemberTypes()
}

func (s *MemberTypes) FindMany(ctx context.Context, filters ...social.Filter) ([]social.MemberType, error) {
	types, err := scan(s.backend, memberTypesTable, filters)
	if err != nil {
		return nil, fmt.Errorf("scan member types: %w", err)
	}
	return types, nil
}

func (s *MemberTypes) FindOne(ctx context.Context, filters ...social.Filter) (social.MemberType, bool, error) {
	mt, ok, err := findOne(s.backend, memberTypesTable, filters)
	if err != nil {
		return social.MemberType{}, false, fmt.Errorf("scan member types: %w", err)
	}
	return mt, ok, nil
}

func (s *MemberTypes) ById(ctx context.Context, id string) (social.MemberType, error) {
	mt, err := byId(s.backend, memberTypesTable, id, social.ErrMemberTypeNotFound)
	if err != nil {
		return social.MemberType{}, wrap(err, "get member type")
	}
	return mt, nil
}

func (s *MemberTypes) Create(ctx context.Context, memberType social.MemberType) (social.MemberType, error) {
	var created social.MemberType
	err := s.backend.Update(func(tx Tx) error {
		var err error
		created, err = tx.MemberTypes().Insert(memberType)
		if errors.Is(err, social.ErrDuplicateId) {
			return social.ErrMemberTypeExists
		}
		return err
	})
	if err != nil {
		return social.MemberType{}, wrap(err, "insert member type")
	}
	return created, nil
}

func (s *MemberTypes) Change(ctx context.Context, id string, change social.MemberTypeChange) (social.MemberType, error) {
	var changed social.MemberType
	err := s.backend.Update(func(tx Tx) error {
		var (
			ok  bool
			err error
		)
		changed, ok, err = tx.MemberTypes().Update(id, change.Apply)
		if err != nil {
			return fmt.Errorf("update member type: %w", err)
		}
		if !ok {
			return social.ErrMemberTypeNotFound
		}
		return nil
	})
	if err != nil {
		return social.MemberType{}, wrap(err, "change member type")
	}
	return changed, nil
}

func (s *MemberTypes) Delete(ctx context.Context, id string) (social.MemberType, error) {
	var deleted social.MemberType
	err := s.backend.Update(func(tx Tx) error {
		if err := requireMemberType(tx, id, social.ErrMemberTypeNotFound); err != nil {
			return err
		}
		profiles, err := tx.Profiles().Scan(social.Equals(social.KeyMemberTypeId, id))
		if err != nil {
			return fmt.Errorf("scan profiles: %w", err)
		}
		if len(profiles) > 0 {
			return social.ErrMemberTypeInUse
		}
		deleted, _, err = tx.MemberTypes().Remove(id)
		if err != nil {
			return fmt.Errorf("remove member type: %w", err)
		}
		return nil
	})
	if err != nil {
		return social.MemberType{}, wrap(err, "delete member type")
	}
	return deleted, nil
}
