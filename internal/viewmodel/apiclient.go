package viewmodel

import (
	"fmt"
	"log"
	"net/http"
	"time"
)

// RemoteCounters is the production CounterAPI: it fires the
// increment/decrement calls at the gallery API without blocking the UI
// path. Failures are logged and dropped; the optimistic local state is
// never rolled back.
type RemoteCounters struct {
	baseURL string
	client  *http.Client
}

func NewRemoteCounters(baseURL string) *RemoteCounters {
	return &RemoteCounters{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *RemoteCounters) AddLikes(id, delta int) {
	go r.send(id, "like", delta)
}

func (r *RemoteCounters) AddDislikes(id, delta int) {
	go r.send(id, "dislike", delta)
}

func (r *RemoteCounters) send(id int, counter string, delta int) {
	method := http.MethodPost
	if delta < 0 {
		method = http.MethodDelete
	}
	url := fmt.Sprintf("%s/api/gallery/%d/%s", r.baseURL, id, counter)

	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		log.Printf("counters: building %s %s: %v", method, url, err)
		return
	}
	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("counters: %s %s: %v", method, url, err)
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		log.Printf("counters: %s %s: status %d", method, url, resp.StatusCode)
	}
}
