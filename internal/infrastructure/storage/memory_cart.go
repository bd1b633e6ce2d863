package storage

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/telegram-shop-bot/internal/domain/entity"
	"github.com/yourusername/telegram-shop-bot/internal/domain/repository"
)

// IDGenerator savat yozuvi uchun sintetik ID yaratadi.
// Testlarda deterministik counter bilan almashtiriladi.
type IDGenerator func() string

type memoryCartRepository struct {
	mu      sync.RWMutex
	entries map[int64][]entity.CartEntry // key: user ID, qiymat qo'shilish tartibida
	newID   IDGenerator
	now     func() time.Time
}

// NewMemoryCartRepository in-memory savat repository yaratish.
// idGen nil bo'lsa UUID ishlatiladi.
func NewMemoryCartRepository(idGen IDGenerator) repository.CartRepository {
	if idGen == nil {
		idGen = uuid.NewString
	}
	return &memoryCartRepository{
		entries: make(map[int64][]entity.CartEntry),
		newID:   idGen,
		now:     time.Now,
	}
}

// AddItem savatga qo'shish. Mavjud (user, product) yozuvi bo'lsa miqdor qo'shiladi.
// Yozuv miqdori doim musbat bo'ladi, shuning uchun quantity < 1 bitta deb olinadi.
func (m *memoryCartRepository) AddItem(ctx context.Context, userID, productID int64, quantity int) (string, error) {
	if quantity < 1 {
		quantity = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	userEntries := m.entries[userID]
	for i := range userEntries {
		if userEntries[i].ProductID == productID {
			userEntries[i].Quantity += quantity
			userEntries[i].UpdatedAt = m.now()
			return userEntries[i].CartID, nil
		}
	}

	entry := entity.CartEntry{
		CartID:    m.newID(),
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: m.now(),
		UpdatedAt: m.now(),
	}
	m.entries[userID] = append(userEntries, entry)
	return entry.CartID, nil
}

// Entries foydalanuvchining barcha savat yozuvlari
func (m *memoryCartRepository) Entries(ctx context.Context, userID int64) ([]entity.CartEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]entity.CartEntry(nil), m.entries[userID]...), nil
}

// SetQuantity mutlaq miqdorni o'rnatish. quantity <= 0 yozuvni o'chiradi.
func (m *memoryCartRepository) SetQuantity(ctx context.Context, cartID string, quantity int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for userID, userEntries := range m.entries {
		for i := range userEntries {
			if userEntries[i].CartID != cartID {
				continue
			}
			if quantity <= 0 {
				m.deleteEntry(userID, i)
				return true, nil
			}
			userEntries[i].Quantity = quantity
			userEntries[i].UpdatedAt = m.now()
			return true, nil
		}
	}
	return false, nil
}

// RemoveItem yozuvni o'chirish (mavjud bo'lmasa ham xato emas)
func (m *memoryCartRepository) RemoveItem(ctx context.Context, cartID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for userID, userEntries := range m.entries {
		for i := range userEntries {
			if userEntries[i].CartID == cartID {
				m.deleteEntry(userID, i)
				return nil
			}
		}
	}
	return nil
}

// deleteEntry yozuvni indeks bo'yicha o'chirish. Lock ichida chaqiriladi.
func (m *memoryCartRepository) deleteEntry(userID int64, idx int) {
	userEntries := m.entries[userID]
	userEntries = append(userEntries[:idx], userEntries[idx+1:]...)
	if len(userEntries) == 0 {
		delete(m.entries, userID)
	} else {
		m.entries[userID] = userEntries
	}
}

// Clear foydalanuvchining barcha yozuvlarini o'chirish
func (m *memoryCartRepository) Clear(ctx context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, userID)
	return nil
}

// ItemCount miqdorlar yig'indisi
func (m *memoryCartRepository) ItemCount(ctx context.Context, userID int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, entry := range m.entries[userID] {
		total += entry.Quantity
	}
	return total, nil
}

// TotalEntries barcha foydalanuvchilardagi yozuvlar soni
func (m *memoryCartRepository) TotalEntries(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, userEntries := range m.entries {
		total += len(userEntries)
	}
	return total, nil
}
