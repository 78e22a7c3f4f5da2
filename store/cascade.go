package store

import (
	"fmt"

	"github.com/buzkaaclicker/social"
)

// deleteUser removes the user and everything that references it. Steps run
// in order inside the caller's transaction:
//  1. the user must exist
//  2. its id is dropped from every subscriber list
//  3. its posts are removed
//  4. its profile is removed
//  5. the user itself is removed
func deleteUser(tx Tx, id string) (social.User, error) {
	users := tx.Users()

	if _, err := requireUser(tx, id, social.ErrUserNotFound); err != nil {
		return social.User{}, err
	}

	subscribers, err := users.Scan(social.Contains(social.KeySubscribedToUserIds, id))
	if err != nil {
		return social.User{}, fmt.Errorf("scan subscribers: %w", err)
	}
	for _, subscriber := range subscribers {
		_, _, err := users.Update(subscriber.Id, func(u *social.User) {
			u.SubscribedToUserIds = without(u.SubscribedToUserIds, id)
		})
		if err != nil {
			return social.User{}, fmt.Errorf("update subscriber %s: %w", subscriber.Id, err)
		}
	}

	posts, err := tx.Posts().Scan(social.Equals(social.KeyUserId, id))
	if err != nil {
		return social.User{}, fmt.Errorf("scan posts: %w", err)
	}
	for _, post := range posts {
		if _, _, err := tx.Posts().Remove(post.Id); err != nil {
			return social.User{}, fmt.Errorf("remove post %s: %w", post.Id, err)
		}
	}

	profiles, err := tx.Profiles().Scan(social.Equals(social.KeyUserId, id))
	if err != nil {
		return social.User{}, fmt.Errorf("scan profiles: %w", err)
	}
	for _, profile := range profiles {
		if _, _, err := tx.Profiles().Remove(profile.Id); err != nil {
			return social.User{}, fmt.Errorf("remove profile %s: %w", profile.Id, err)
		}
	}

	deleted, ok, err := users.Remove(id)
	if err != nil {
		return social.User{}, fmt.Errorf("remove user: %w", err)
	}
	if !ok {
		return social.User{}, social.ErrUserNotFound
	}
	return deleted, nil
}

// subscribe records followerId in the subscriber list of targetId. Repeated
// calls leave a single entry.
func subscribe(tx Tx, followerId string, targetId string) (social.User, error) {
	if _, err := requireUser(tx, followerId, social.ErrUserNotFound); err != nil {
		return social.User{}, err
	}
	if _, err := requireUser(tx, targetId, social.ErrUserNotFound); err != nil {
		return social.User{}, err
	}
	if followerId == targetId {
		return social.User{}, social.ErrSelfSubscription
	}

	target, _, err := tx.Users().Update(targetId, func(u *social.User) {
		if indexOf(u.SubscribedToUserIds, followerId) == -1 {
			u.SubscribedToUserIds = append(u.SubscribedToUserIds, followerId)
		}
	})
	if err != nil {
		return social.User{}, fmt.Errorf("update target: %w", err)
	}
	return target, nil
}

// unsubscribe removes one occurrence of followerId from the subscriber list
// of targetId.
func unsubscribe(tx Tx, followerId string, targetId string) (social.User, error) {
	if _, err := requireUser(tx, followerId, social.ErrUserNotFound); err != nil {
		return social.User{}, err
	}
	target, err := requireUser(tx, targetId, social.ErrUserNotFound)
	if err != nil {
		return social.User{}, err
	}
	if indexOf(target.SubscribedToUserIds, followerId) == -1 {
		return social.User{}, social.ErrNotSubscribed
	}

	target, _, err = tx.Users().Update(targetId, func(u *social.User) {
		i := indexOf(u.SubscribedToUserIds, followerId)
		u.SubscribedToUserIds = append(u.SubscribedToUserIds[:i:i], u.SubscribedToUserIds[i+1:]...)
	})
	if err != nil {
		return social.User{}, fmt.Errorf("update target: %w", err)
	}
	return target, nil
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func without(ids []string, id string) []string {
	kept := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
