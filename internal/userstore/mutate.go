package userstore

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/marcus/basket/internal/models"
)

var (
	// ErrListIndex is returned when a list position does not exist.
	ErrListIndex = errors.New("no such list")
	// ErrItemIndex is returned when an item position does not exist.
	ErrItemIndex = errors.New("no such item")
	// ErrEmptyName is returned for blank list or item names.
	ErrEmptyName = errors.New("name must not be empty")
)

// These helpers edit a loaded slice in place or return a new one. None of
// them consult the entitlement gate; callers check first.

// AddList appends a new empty list and returns the updated slice.
func AddList(lists []models.ShoppingList, name string) ([]models.ShoppingList, models.ShoppingList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return lists, models.ShoppingList{}, ErrEmptyName
	}
	l := models.ShoppingList{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Items:     []models.Item{},
	}
	return append(lists, l), l, nil
}

// RemoveList deletes the list at index.
func RemoveList(lists []models.ShoppingList, index int) ([]models.ShoppingList, models.ShoppingList, error) {
	if index < 0 || index >= len(lists) {
		return lists, models.ShoppingList{}, fmt.Errorf("%w: %d", ErrListIndex, index+1)
	}
	removed := lists[index]
	return append(lists[:index:index], lists[index+1:]...), removed, nil
}

// AddItem appends an item to the list at index. Quantity below 1 is stored
// as unset.
func AddItem(lists []models.ShoppingList, index int, name string, qty int) (models.Item, error) {
	if index < 0 || index >= len(lists) {
		return models.Item{}, fmt.Errorf("%w: %d", ErrListIndex, index+1)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Item{}, ErrEmptyName
	}
	if qty < 1 {
		qty = 0
	}
	it := models.Item{
		ID:        uuid.New().String(),
		Name:      name,
		Quantity:  qty,
		CreatedAt: time.Now().UTC(),
	}
	lists[index].Items = append(lists[index].Items, it)
	return it, nil
}

// RemoveItem deletes one item from the list at index.
func RemoveItem(lists []models.ShoppingList, index, item int) (models.Item, error) {
	l, err := itemAt(lists, index, item)
	if err != nil {
		return models.Item{}, err
	}
	removed := l.Items[item]
	l.Items = append(l.Items[:item:item], l.Items[item+1:]...)
	return removed, nil
}

// SetChecked marks one item checked or unchecked.
func SetChecked(lists []models.ShoppingList, index, item int, checked bool) (models.Item, error) {
	l, err := itemAt(lists, index, item)
	if err != nil {
		return models.Item{}, err
	}
	l.Items[item].Checked = checked
	return l.Items[item], nil
}

func itemAt(lists []models.ShoppingList, index, item int) (*models.ShoppingList, error) {
	if index < 0 || index >= len(lists) {
		return nil, fmt.Errorf("%w: %d", ErrListIndex, index+1)
	}
	l := &lists[index]
	if item < 0 || item >= len(l.Items) {
		return nil, fmt.Errorf("%w: %d", ErrItemIndex, item+1)
	}
	return l, nil
}
