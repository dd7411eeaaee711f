package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"pushsvc/internal/domain/service"

	"github.com/pkg/errors"
)

// Message attribute keys set on every published dispatch job.
const (
	AttrJobID     = "job_id"
	AttrCallerID  = "caller_id"
	AttrRequestID = "request_id"
)

// PushEnvelope is the body Pub/Sub POSTs to a push subscription endpoint.
// The local publisher produces the same shape so the worker handles both alike.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// jobAttributes returns the routing and tracing attributes for a job.
func jobAttributes(job *service.DispatchJob) map[string]string {
	attributes := map[string]string{
		AttrJobID:    job.JobID,
		AttrCallerID: job.CallerID,
	}
	if job.RequestID != "" {
		attributes[AttrRequestID] = job.RequestID
	}

	return attributes
}

// newPushEnvelope wraps a job the way Pub/Sub push delivery does.
func newPushEnvelope(job *service.DispatchJob, subscription string, publishedAt time.Time) (*PushEnvelope, error) {
	data, err := json.Marshal(job)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	envelope := &PushEnvelope{Subscription: subscription}
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.Attributes = jobAttributes(job)
	envelope.Message.MessageID = job.JobID
	envelope.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return envelope, nil
}

// DecodeDispatchJob extracts the dispatch job carried by the envelope.
func (e *PushEnvelope) DecodeDispatchJob() (*service.DispatchJob, error) {
	if e.Message.Data == "" {
		return nil, errors.New("push message has no data")
	}

	raw, err := base64.StdEncoding.DecodeString(e.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode push message data")
	}

	job := &service.DispatchJob{}
	if err := json.Unmarshal(raw, job); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal dispatch job")
	}

	if job.Request == nil {
		return nil, errors.New("dispatch job has no request")
	}
	if job.RequestID == "" {
		job.RequestID = e.Message.Attributes[AttrRequestID]
	}

	return job, nil
}
