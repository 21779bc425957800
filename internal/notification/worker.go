package notification

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"

	"relief-coordination-backend/internal/model"
	"relief-coordination-backend/internal/relief"
	"relief-coordination-backend/internal/store"
)

// NotificationSender defines the interface for sending a web push notification.
type NotificationSender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender is a real implementation of NotificationSender using the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// WorkerPool manages a pool of workers that alert donors when a newly
// registered relief request matches one of their donation preferences.
type WorkerPool struct {
	size    int
	jobs    chan string
	store   store.Store
	relief  *relief.Service
	webpush *webpush.Options
	sender  NotificationSender
}

// NewWorkerPool creates a new worker pool. Jobs are relief request ids.
func NewWorkerPool(size int, st store.Store, reliefSvc *relief.Service, webpushOptions *webpush.Options) *WorkerPool {
	return &WorkerPool{
		size:    size,
		jobs:    make(chan string, size), // Buffered channel
		store:   st,
		relief:  reliefSvc,
		webpush: webpushOptions,
		sender:  &WebPushSender{}, // Use the real sender by default
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		go wp.worker(ctx, i)
	}
}

// worker is the actual worker goroutine.
func (wp *WorkerPool) worker(ctx context.Context, id int) {
	log.Printf("Worker %d started", id)
	for {
		select {
		case requestID := <-wp.jobs:
			log.Printf("Worker %d processing request %s", id, requestID)
			wp.notifyMatchingDonors(ctx, requestID)
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		}
	}
}

// Dispatch sends a job to the worker pool.
func (wp *WorkerPool) Dispatch(requestID string) {
	wp.jobs <- requestID
}

// Jobs returns the jobs channel for testing.
func (wp *WorkerPool) Jobs() chan string {
	return wp.jobs
}

// notifyMatchingDonors finds donors whose preferences match the request's
// line items and pushes an alert to each of their registered browsers.
func (wp *WorkerPool) notifyMatchingDonors(ctx context.Context, requestID string) {
	request, err := wp.store.GetRequest(ctx, requestID)
	if err != nil {
		log.Printf("Error fetching request %s: %v", requestID, err)
		return
	}

	userIDs, err := wp.relief.MatchDonorsForRequest(ctx, request)
	if err != nil {
		log.Printf("Error matching donors for request %s: %v", requestID, err)
		return
	}
	if len(userIDs) == 0 {
		return
	}

	subscriptions, err := wp.store.ListSubscriptionsByUsers(ctx, userIDs)
	if err != nil {
		log.Printf("Error fetching subscriptions for request %s: %v", requestID, err)
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	log.Printf("Sending %d notifications for request %s", len(subscriptions), requestID)

	itemLabel := ""
	if item := request.RepresentativeItem(); item != nil {
		itemLabel = item.ItemName
	}
	message := fmt.Sprintf("새로운 구호품 요청이 등록되었습니다: %s", itemLabel)
	for _, sub := range subscriptions {
		wp.sendNotification(ctx, sub, []byte(message))
	}
}

// sendNotification sends a single web push notification.
func (wp *WorkerPool) sendNotification(ctx context.Context, sub model.PushSubscription, payload []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := wp.sender.Send(payload, wpSub, wp.webpush)
	if err != nil {
		log.Printf("Error sending notification to %s: %v", sub.Endpoint, err)
		return
	}
	defer resp.Body.Close()

	// Handle expired subscriptions
	if resp.StatusCode == http.StatusGone {
		log.Printf("Subscription for endpoint %s is expired. Deleting.", sub.Endpoint)
		if err := wp.store.DeleteSubscription(ctx, sub.Endpoint); err != nil {
			log.Printf("Failed to delete expired subscription %s: %v", sub.Endpoint, err)
		}
	}
}
