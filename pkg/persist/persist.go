// Package persist serializes an AccessManager to and from a JSON document.
// The core package never imports this one: persistence is an external
// collaborator, wired in only by callers that need it, the same way the
// access manager itself has no opinion on how a user, group, component, or
// access level value is spelled as a string.
package persist

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/barnowlsnest/go-accessmanager/pkg/accessmanager"
	"github.com/barnowlsnest/go-accessmanager/pkg/serial"
	"github.com/barnowlsnest/go-accessmanager/pkg/stringifier"
)

// Document is the JSON-serializable shape of an AccessManager: every user,
// group, entity type, entity, edge, and mapping it holds, plus the
// instance's UUID as a provenance field.
//
// Revision counts how many times Serialize has produced a document for
// this InstanceID within the process lifetime, via the shared serial.Seq()
// generator keyed on InstanceID. It lets a caller persisting snapshots to,
// say, successive files notice which one is newest without comparing
// document bodies.
type Document struct {
	InstanceID string `json:"instanceId"`
	Revision   uint64 `json:"revision"`

	Users  []string `json:"users"`
	Groups []string `json:"groups"`

	UserToGroupMappings  []userGroupEdge `json:"userToGroupMappings"`
	GroupToGroupMappings []groupGroupEdge `json:"groupToGroupMappings"`

	UserToComponentMappings  []componentMapping `json:"userToComponentMappings"`
	GroupToComponentMappings []componentMapping `json:"groupToComponentMappings"`

	EntityTypes []entityTypeDoc `json:"entityTypes"`

	UserToEntityMappings  []entityMapping `json:"userToEntityMappings"`
	GroupToEntityMappings []entityMapping `json:"groupToEntityMappings"`
}

type userGroupEdge struct {
	User  string `json:"user"`
	Group string `json:"group"`
}

type groupGroupEdge struct {
	FromGroup string `json:"fromGroup"`
	ToGroup   string `json:"toGroup"`
}

type componentMapping struct {
	Principal string `json:"principal"`
	Component string `json:"component"`
	Access    string `json:"access"`
}

type entityTypeDoc struct {
	Name     string   `json:"name"`
	Entities []string `json:"entities"`
}

type entityMapping struct {
	Principal  string `json:"principal"`
	EntityType string `json:"entityType"`
	Entity     string `json:"entity"`
}

// Stringifiers bundles the four Stringifier collaborators Serialize and
// Deserialize need to convert between an AccessManager's type-parameter
// values and the strings a JSON document can hold.
type Stringifiers[U, G, C, A comparable] struct {
	User      stringifier.Stringifier[U]
	Group     stringifier.Stringifier[G]
	Component stringifier.Stringifier[C]
	Access    stringifier.Stringifier[A]
}

// Serialize converts am into a Document using the supplied stringifiers.
func Serialize[U, G, C, A comparable](am *accessmanager.AccessManager[U, G, C, A], s Stringifiers[U, G, C, A]) (*Document, error) {
	instanceID := am.InstanceID().String()
	doc := &Document{
		InstanceID: instanceID,
		Revision:   serial.Seq().Next(instanceID),
	}

	for u := range am.Users() {
		doc.Users = append(doc.Users, s.User.ToString(u))
	}
	for g := range am.Groups() {
		doc.Groups = append(doc.Groups, s.Group.ToString(g))
	}

	for u := range am.Users() {
		groups, err := am.GetUserToGroupMappings(u)
		if err != nil {
			return nil, fmt.Errorf("reading user-to-group mappings for serialization: %w", err)
		}
		for g := range groups {
			doc.UserToGroupMappings = append(doc.UserToGroupMappings, userGroupEdge{
				User:  s.User.ToString(u),
				Group: s.Group.ToString(g),
			})
		}

		pairs, err := am.GetUserToApplicationComponentAndAccessLevelMappings(u)
		if err != nil {
			return nil, fmt.Errorf("reading user-to-component mappings for serialization: %w", err)
		}
		for pair := range pairs {
			doc.UserToComponentMappings = append(doc.UserToComponentMappings, componentMapping{
				Principal: s.User.ToString(u),
				Component: s.Component.ToString(pair.Component),
				Access:    s.Access.ToString(pair.Access),
			})
		}

		refs, err := am.GetUserToEntityMappingsForUser(u)
		if err != nil {
			return nil, fmt.Errorf("reading user-to-entity mappings for serialization: %w", err)
		}
		for ref := range refs {
			doc.UserToEntityMappings = append(doc.UserToEntityMappings, entityMapping{
				Principal:  s.User.ToString(u),
				EntityType: ref.EntityType,
				Entity:     ref.Entity,
			})
		}
	}

	for g := range am.Groups() {
		tos, err := am.GetGroupToGroupMappings(g)
		if err != nil {
			return nil, fmt.Errorf("reading group-to-group mappings for serialization: %w", err)
		}
		for to := range tos {
			doc.GroupToGroupMappings = append(doc.GroupToGroupMappings, groupGroupEdge{
				FromGroup: s.Group.ToString(g),
				ToGroup:   s.Group.ToString(to),
			})
		}

		pairs, err := am.GetGroupToApplicationComponentAndAccessLevelMappings(g)
		if err != nil {
			return nil, fmt.Errorf("reading group-to-component mappings for serialization: %w", err)
		}
		for pair := range pairs {
			doc.GroupToComponentMappings = append(doc.GroupToComponentMappings, componentMapping{
				Principal: s.Group.ToString(g),
				Component: s.Component.ToString(pair.Component),
				Access:    s.Access.ToString(pair.Access),
			})
		}

		refs, err := am.GetGroupToEntityMappingsForGroup(g)
		if err != nil {
			return nil, fmt.Errorf("reading group-to-entity mappings for serialization: %w", err)
		}
		for ref := range refs {
			doc.GroupToEntityMappings = append(doc.GroupToEntityMappings, entityMapping{
				Principal:  s.Group.ToString(g),
				EntityType: ref.EntityType,
				Entity:     ref.Entity,
			})
		}
	}

	for name := range am.EntityTypes() {
		entities, err := am.GetEntities(name)
		if err != nil {
			return nil, fmt.Errorf("reading entities for serialization: %w", err)
		}
		row := entityTypeDoc{Name: name}
		for e := range entities {
			row.Entities = append(row.Entities, e)
		}
		doc.EntityTypes = append(doc.EntityTypes, row)
	}

	return doc, nil
}

// Marshal serializes am and encodes the result as JSON.
func Marshal[U, G, C, A comparable](am *accessmanager.AccessManager[U, G, C, A], s Stringifiers[U, G, C, A]) ([]byte, error) {
	doc, err := Serialize(am, s)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// Deserialize rebuilds an AccessManager from a Document, in an order that
// satisfies every cross-reference: vertices first, then edges, then
// mappings, so no NotFound error is possible for well-formed input.
//
// The restored instance is stamped with a fresh instance ID; Document's
// InstanceID field is provenance only and is not replayed.
func Deserialize[U, G, C, A comparable](doc *Document, s Stringifiers[U, G, C, A]) (*accessmanager.AccessManager[U, G, C, A], error) {
	am := accessmanager.New[U, G, C, A]()

	for _, raw := range doc.Users {
		u, err := s.User.FromString(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding user %q: %w", raw, err)
		}
		if err := am.AddUser(u); err != nil {
			return nil, fmt.Errorf("restoring user %q: %w", raw, err)
		}
	}
	for _, raw := range doc.Groups {
		g, err := s.Group.FromString(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding group %q: %w", raw, err)
		}
		if err := am.AddGroup(g); err != nil {
			return nil, fmt.Errorf("restoring group %q: %w", raw, err)
		}
	}

	for _, row := range doc.EntityTypes {
		if err := am.AddEntityType(row.Name); err != nil {
			return nil, fmt.Errorf("restoring entity type %q: %w", row.Name, err)
		}
		for _, entity := range row.Entities {
			if err := am.AddEntity(row.Name, entity); err != nil {
				return nil, fmt.Errorf("restoring entity %q/%q: %w", row.Name, entity, err)
			}
		}
	}

	for _, edge := range doc.UserToGroupMappings {
		u, err := s.User.FromString(edge.User)
		if err != nil {
			return nil, fmt.Errorf("decoding user %q: %w", edge.User, err)
		}
		g, err := s.Group.FromString(edge.Group)
		if err != nil {
			return nil, fmt.Errorf("decoding group %q: %w", edge.Group, err)
		}
		if err := am.AddUserToGroupMapping(u, g); err != nil {
			return nil, fmt.Errorf("restoring user-to-group mapping %q/%q: %w", edge.User, edge.Group, err)
		}
	}
	for _, edge := range doc.GroupToGroupMappings {
		from, err := s.Group.FromString(edge.FromGroup)
		if err != nil {
			return nil, fmt.Errorf("decoding group %q: %w", edge.FromGroup, err)
		}
		to, err := s.Group.FromString(edge.ToGroup)
		if err != nil {
			return nil, fmt.Errorf("decoding group %q: %w", edge.ToGroup, err)
		}
		if err := am.AddGroupToGroupMapping(from, to); err != nil {
			return nil, fmt.Errorf("restoring group-to-group mapping %q/%q: %w", edge.FromGroup, edge.ToGroup, err)
		}
	}

	for _, m := range doc.UserToComponentMappings {
		u, err := s.User.FromString(m.Principal)
		if err != nil {
			return nil, fmt.Errorf("decoding user %q: %w", m.Principal, err)
		}
		c, err := s.Component.FromString(m.Component)
		if err != nil {
			return nil, fmt.Errorf("decoding component %q: %w", m.Component, err)
		}
		a, err := s.Access.FromString(m.Access)
		if err != nil {
			return nil, fmt.Errorf("decoding access level %q: %w", m.Access, err)
		}
		if err := am.AddUserToApplicationComponentAndAccessLevelMapping(u, c, a); err != nil {
			return nil, fmt.Errorf("restoring user-to-component mapping for %q: %w", m.Principal, err)
		}
	}
	for _, m := range doc.GroupToComponentMappings {
		g, err := s.Group.FromString(m.Principal)
		if err != nil {
			return nil, fmt.Errorf("decoding group %q: %w", m.Principal, err)
		}
		c, err := s.Component.FromString(m.Component)
		if err != nil {
			return nil, fmt.Errorf("decoding component %q: %w", m.Component, err)
		}
		a, err := s.Access.FromString(m.Access)
		if err != nil {
			return nil, fmt.Errorf("decoding access level %q: %w", m.Access, err)
		}
		if err := am.AddGroupToApplicationComponentAndAccessLevelMapping(g, c, a); err != nil {
			return nil, fmt.Errorf("restoring group-to-component mapping for %q: %w", m.Principal, err)
		}
	}

	for _, m := range doc.UserToEntityMappings {
		u, err := s.User.FromString(m.Principal)
		if err != nil {
			return nil, fmt.Errorf("decoding user %q: %w", m.Principal, err)
		}
		if err := am.AddUserToEntityMapping(u, m.EntityType, m.Entity); err != nil {
			return nil, fmt.Errorf("restoring user-to-entity mapping for %q: %w", m.Principal, err)
		}
	}
	for _, m := range doc.GroupToEntityMappings {
		g, err := s.Group.FromString(m.Principal)
		if err != nil {
			return nil, fmt.Errorf("decoding group %q: %w", m.Principal, err)
		}
		if err := am.AddGroupToEntityMapping(g, m.EntityType, m.Entity); err != nil {
			return nil, fmt.Errorf("restoring group-to-entity mapping for %q: %w", m.Principal, err)
		}
	}

	return am, nil
}

// Unmarshal decodes JSON-encoded data into a Document and deserializes it
// into an AccessManager.
func Unmarshal[U, G, C, A comparable](data []byte, s Stringifiers[U, G, C, A]) (*accessmanager.AccessManager[U, G, C, A], error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding JSON document: %w", err)
	}
	return Deserialize(&doc, s)
}

// InstanceUUID parses the Document's InstanceID provenance field back into
// a uuid.UUID.
func (doc *Document) InstanceUUID() (uuid.UUID, error) {
	return uuid.Parse(doc.InstanceID)
}
