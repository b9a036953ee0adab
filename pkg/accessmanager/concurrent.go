package accessmanager

import (
	"context"
	"fmt"
	"iter"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Concurrent wraps an AccessManager with a reader-writer lock, making it
// safe to share across goroutines. The bare AccessManager performs no
// internal synchronization; Concurrent supplies it as a decorator instead
// of baking it into the core, so single-threaded callers keep a
// lock-free core.
//
// A singleflight.Group additionally collapses concurrent identical reads
// (same method and arguments) into one underlying traversal, the way a
// burst of requests for the same (user, component, access) triple during
// a cache-cold period would otherwise redundantly re-walk the same graph.
type Concurrent[U comparable, G comparable, C comparable, A comparable] struct {
	mu    sync.RWMutex
	inner *AccessManager[U, G, C, A]
	sf    singleflight.Group
}

// NewConcurrent wraps am for safe concurrent use. am must not be mutated
// by any other caller afterwards except through the returned Concurrent.
func NewConcurrent[U comparable, G comparable, C comparable, A comparable](am *AccessManager[U, G, C, A]) *Concurrent[U, G, C, A] {
	return &Concurrent[U, G, C, A]{inner: am}
}

// AddUser is the write-locked equivalent of AccessManager.AddUser.
func (c *Concurrent[U, G, C, A]) AddUser(user U) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddUser(user)
}

// RemoveUser is the write-locked equivalent of AccessManager.RemoveUser.
func (c *Concurrent[U, G, C, A]) RemoveUser(user U) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveUser(user)
}

// AddGroup is the write-locked equivalent of AccessManager.AddGroup.
func (c *Concurrent[U, G, C, A]) AddGroup(group G) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddGroup(group)
}

// RemoveGroup is the write-locked equivalent of AccessManager.RemoveGroup.
func (c *Concurrent[U, G, C, A]) RemoveGroup(group G) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveGroup(group)
}

// AddUserToGroupMapping is the write-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) AddUserToGroupMapping(user U, group G) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddUserToGroupMapping(user, group)
}

// AddGroupToGroupMapping is the write-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) AddGroupToGroupMapping(fromGroup, toGroup G) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddGroupToGroupMapping(fromGroup, toGroup)
}

// AddUserToApplicationComponentAndAccessLevelMapping is the write-locked
// equivalent of the same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) AddUserToApplicationComponentAndAccessLevelMapping(user U, component C, access A) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddUserToApplicationComponentAndAccessLevelMapping(user, component, access)
}

// AddGroupToApplicationComponentAndAccessLevelMapping is the write-locked
// equivalent of the same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) AddGroupToApplicationComponentAndAccessLevelMapping(group G, component C, access A) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddGroupToApplicationComponentAndAccessLevelMapping(group, component, access)
}

// HasAccessToApplicationComponent is the read-locked, singleflight-deduped
// equivalent of the same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) HasAccessToApplicationComponent(user U, component C, access A) (bool, error) {
	key := fmt.Sprintf("hasAccess:%v:%v:%v", user, component, access)
	v, err, _ := c.sf.Do(key, func() (any, error) {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.inner.HasAccessToApplicationComponent(user, component, access)
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// HasAccessToEntity is the read-locked, singleflight-deduped equivalent of
// the same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) HasAccessToEntity(user U, entityType, entity string) (bool, error) {
	key := fmt.Sprintf("hasEntity:%v:%s:%s", user, entityType, entity)
	v, err, _ := c.sf.Do(key, func() (any, error) {
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.inner.HasAccessToEntity(user, entityType, entity)
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// GetAccessibleEntities is the read-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) GetAccessibleEntities(user U, entityType string) (map[string]struct{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.GetAccessibleEntities(user, entityType)
}

// GetUserToGroupMappings is the read-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) GetUserToGroupMappings(user U) (iter.Seq[G], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.GetUserToGroupMappings(user)
}

// ContainsUser is the read-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) ContainsUser(user U) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.ContainsUser(user)
}

// ContainsGroup is the read-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) ContainsGroup(group G) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.ContainsGroup(group)
}

// RemoveUserToGroupMapping is the write-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) RemoveUserToGroupMapping(user U, group G) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveUserToGroupMapping(user, group)
}

// RemoveGroupToGroupMapping is the write-locked equivalent of the
// same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) RemoveGroupToGroupMapping(fromGroup, toGroup G) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveGroupToGroupMapping(fromGroup, toGroup)
}

// GetGroupToGroupMappings is the read-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) GetGroupToGroupMappings(group G) (iter.Seq[G], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.GetGroupToGroupMappings(group)
}

// RemoveUserToApplicationComponentAndAccessLevelMapping is the
// write-locked equivalent of the same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) RemoveUserToApplicationComponentAndAccessLevelMapping(user U, component C, access A) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveUserToApplicationComponentAndAccessLevelMapping(user, component, access)
}

// RemoveGroupToApplicationComponentAndAccessLevelMapping is the
// write-locked equivalent of the same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) RemoveGroupToApplicationComponentAndAccessLevelMapping(group G, component C, access A) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveGroupToApplicationComponentAndAccessLevelMapping(group, component, access)
}

// GetUserToApplicationComponentAndAccessLevelMappings is the read-locked
// equivalent of the same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) GetUserToApplicationComponentAndAccessLevelMappings(user U) (iter.Seq[ComponentAccess[C, A]], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.GetUserToApplicationComponentAndAccessLevelMappings(user)
}

// GetGroupToApplicationComponentAndAccessLevelMappings is the read-locked
// equivalent of the same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) GetGroupToApplicationComponentAndAccessLevelMappings(group G) (iter.Seq[ComponentAccess[C, A]], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.GetGroupToApplicationComponentAndAccessLevelMappings(group)
}

// AddEntityType is the write-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) AddEntityType(entityType string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddEntityType(entityType)
}

// RemoveEntityType is the write-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) RemoveEntityType(entityType string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveEntityType(entityType)
}

// AddEntity is the write-locked equivalent of the same-named AccessManager
// method.
func (c *Concurrent[U, G, C, A]) AddEntity(entityType, entity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddEntity(entityType, entity)
}

// RemoveEntity is the write-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) RemoveEntity(entityType, entity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveEntity(entityType, entity)
}

// GetEntities is the read-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) GetEntities(entityType string) (iter.Seq[string], error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.GetEntities(entityType)
}

// AddUserToEntityMapping is the write-locked equivalent of the same-named
// AccessManager method.
func (c *Concurrent[U, G, C, A]) AddUserToEntityMapping(user U, entityType, entity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddUserToEntityMapping(user, entityType, entity)
}

// RemoveUserToEntityMapping is the write-locked equivalent of the
// same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) RemoveUserToEntityMapping(user U, entityType, entity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveUserToEntityMapping(user, entityType, entity)
}

// AddGroupToEntityMapping is the write-locked equivalent of the
// same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) AddGroupToEntityMapping(group G, entityType, entity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.AddGroupToEntityMapping(group, entityType, entity)
}

// RemoveGroupToEntityMapping is the write-locked equivalent of the
// same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) RemoveGroupToEntityMapping(group G, entityType, entity string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.RemoveGroupToEntityMapping(group, entityType, entity)
}

// BatchHasAccessToApplicationComponent is the read-locked equivalent of the
// same-named AccessManager method.
func (c *Concurrent[U, G, C, A]) BatchHasAccessToApplicationComponent(ctx context.Context, user U, pairs []ComponentAccess[C, A]) (map[ComponentAccess[C, A]]bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.BatchHasAccessToApplicationComponent(ctx, user, pairs)
}

// Users is the read-locked equivalent of the same-named AccessManager
// method. The returned sequence is a snapshot safe to range over after
// the lock is released.
func (c *Concurrent[U, G, C, A]) Users() iter.Seq[U] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Users()
}

// Groups is the read-locked equivalent of the same-named AccessManager
// method.
func (c *Concurrent[U, G, C, A]) Groups() iter.Seq[G] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.inner.Groups()
}
