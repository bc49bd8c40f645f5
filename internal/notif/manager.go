package notif

import (
	"context"
	"log"
	"sync"

	"cinecircle/internal/common"
)

// Manager fans notification events out to its observers. Synchronous Notify
// is used for events the caller wants stored before returning; NotifyAsync
// queues the event for the worker pool and drops it if the channel is full.
type Manager struct {
	observers    map[string]common.Observer
	eventChannel chan common.NotificationEvent
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.RWMutex
	wg           sync.WaitGroup
}

func NewManager(workers, bufferSize int) *Manager {
	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		observers:    make(map[string]common.Observer),
		eventChannel: make(chan common.NotificationEvent, bufferSize),
		ctx:          ctx,
		cancel:       cancel,
	}

	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.processEvents()
	}
	return m
}

func (m *Manager) Subscribe(observer common.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers[observer.Name()] = observer
	log.Printf("observer %s subscribed", observer.Name())
}

func (m *Manager) Unsubscribe(observer common.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.observers, observer.Name())
	log.Printf("observer %s unsubscribed", observer.Name())
}

func (m *Manager) Notify(event common.NotificationEvent) {
	m.mu.RLock()
	observers := make([]common.Observer, 0, len(m.observers))
	for _, obs := range m.observers {
		observers = append(observers, obs)
	}
	m.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			log.Printf("observer %s update failed: %v", observer.Name(), err)
		}
	}
}

func (m *Manager) NotifyAsync(event common.NotificationEvent) {
	select {
	case m.eventChannel <- event:
	case <-m.ctx.Done():
	default:
		log.Printf("notification channel full, dropping event: %s", event.Type)
	}
}

func (m *Manager) processEvents() {
	defer m.wg.Done()
	for {
		select {
		case event := <-m.eventChannel:
			m.Notify(event)
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Manager) Shutdown() {
	m.cancel()
	m.wg.Wait()
	log.Println("notification manager shutdown complete")
}
