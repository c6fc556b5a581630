package draftboard

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot сериализуемое состояние черновика
type Snapshot struct {
	Buckets map[Day][]Task `json:"buckets"`
}

// Snapshot снимает копию текущего черновика
func (b *Board) Snapshot() *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	buckets := make(map[Day][]Task, len(b.buckets))
	for day, tasks := range b.buckets {
		copied := make([]Task, len(tasks))
		copy(copied, tasks)
		buckets[day] = copied
	}

	return &Snapshot{Buckets: buckets}
}

// Restore замещает черновик содержимым снапшота
func (b *Board) Restore(snap *Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	buckets := emptyBuckets()
	for _, day := range boardDays {
		if tasks, ok := snap.Buckets[day]; ok {
			copied := make([]Task, len(tasks))
			copy(copied, tasks)
			buckets[day] = copied
		}
	}

	b.buckets = buckets
	b.state = StateReady
	b.lastErr = nil
}

// FileStore сохраняет черновики на диск, по файлу на мастера
// Черновик переживает перезапуск клиента до следующей загрузки с сервера
type FileStore struct {
	dir string
}

// NewFileStore создает хранилище черновиков в каталоге dir
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store dir: %v", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(workerID int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("draft_%d.json", workerID))
}

// Save записывает снапшот черновика мастера
func (s *FileStore) Save(workerID int64, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %v", err)
	}

	tmp := s.path(workerID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %v", err)
	}

	if err := os.Rename(tmp, s.path(workerID)); err != nil {
		return fmt.Errorf("failed to replace snapshot: %v", err)
	}

	return nil
}

// Load читает снапшот черновика мастера
// Отсутствующий файл - не ошибка: возвращается (nil, nil)
func (s *FileStore) Load(workerID int64) (*Snapshot, error) {
	data, err := os.ReadFile(s.path(workerID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %v", err)
	}

	return &snap, nil
}

// Delete удаляет сохраненный черновик мастера
func (s *FileStore) Delete(workerID int64) error {
	if err := os.Remove(s.path(workerID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete snapshot: %v", err)
	}
	return nil
}
