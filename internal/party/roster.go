package party

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mlange-42/ark/ecs"
)

// ErrUnknownActor is returned for IDs that are not in the roster.
var ErrUnknownActor = errors.New("unknown actor")

// ActorName is the display name component.
type ActorName struct {
	Value string
}

// Profile holds the static parts of an actor.
type Profile struct {
	ID    int
	Class string
}

// MemberDef is the JSON definition of one party member.
type MemberDef struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// RosterDef is the JSON-serializable party definition.
type RosterDef struct {
	Party []MemberDef `json:"party"`
}

// Roster stores party members as entities. It implements the naming
// screen's name store.
type Roster struct {
	ECS      *ecs.World
	names    *ecs.Map[ActorName]
	profiles *ecs.Map[Profile]
	byID     map[int]ecs.Entity
	order    []int
}

// LoadRoster parses a roster from JSON bytes.
func LoadRoster(data []byte) (*Roster, error) {
	var def RosterDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	return NewRoster(def.Party)
}

// NewRoster creates one entity per member. IDs must be unique.
func NewRoster(members []MemberDef) (*Roster, error) {
	w := ecs.NewWorld(len(members) + 1)
	r := &Roster{
		ECS:      w,
		names:    ecs.NewMap[ActorName](w),
		profiles: ecs.NewMap[Profile](w),
		byID:     make(map[int]ecs.Entity, len(members)),
	}
	create := ecs.NewMap2[ActorName, Profile](w)
	for _, m := range members {
		if _, dup := r.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate actor id %d", m.ID)
		}
		r.byID[m.ID] = create.NewEntity(
			&ActorName{Value: m.Name},
			&Profile{ID: m.ID, Class: m.Class},
		)
		r.order = append(r.order, m.ID)
	}
	return r, nil
}

func (r *Roster) entity(id int) (ecs.Entity, error) {
	e, ok := r.byID[id]
	if !ok {
		return e, fmt.Errorf("actor %d: %w", id, ErrUnknownActor)
	}
	return e, nil
}

// Name returns the actor's current name.
func (r *Roster) Name(id int) (string, error) {
	e, err := r.entity(id)
	if err != nil {
		return "", err
	}
	return r.names.Get(e).Value, nil
}

// SetName renames the actor.
func (r *Roster) SetName(id int, name string) error {
	e, err := r.entity(id)
	if err != nil {
		return err
	}
	r.names.Get(e).Value = name
	return nil
}

// Class returns the actor's class.
func (r *Roster) Class(id int) (string, error) {
	e, err := r.entity(id)
	if err != nil {
		return "", err
	}
	return r.profiles.Get(e).Class, nil
}

// IDs returns actor IDs in roster order.
func (r *Roster) IDs() []int {
	ids := make([]int, len(r.order))
	copy(ids, r.order)
	return ids
}
