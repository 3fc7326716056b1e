package store

import (
	"ny11/wellness-app/internal/domain"
)

// ShowToast enqueues a toast that expires after the toast TTL.
func (s *Store) ShowToast(message string, severity domain.Severity) int64 {
	var id int64
	s.mutate(func() bool {
		id = s.pushToastLocked(message, severity)
		return true
	})
	return id
}

// ShowNotification enqueues a notification that expires after the notification
// TTL. Any id on n is ignored; the generated id is returned.
func (s *Store) ShowNotification(n domain.Notification) int64 {
	var id int64
	s.mutate(func() bool {
		id = s.pushNotificationLocked(n)
		return true
	})
	return id
}

// DismissToast removes a toast if it is still queued.
func (s *Store) DismissToast(id int64) bool {
	return s.mutate(func() bool {
		return s.removeToastLocked(id)
	})
}

// DismissNotification removes a notification if it is still queued.
func (s *Store) DismissNotification(id int64) bool {
	return s.mutate(func() bool {
		return s.removeNotificationLocked(id)
	})
}

// nextNoticeIDLocked returns a strictly increasing id based on creation time.
func (s *Store) nextNoticeIDLocked() int64 {
	id := s.clock.Now().UnixMilli()
	if id <= s.lastNoticeID {
		id = s.lastNoticeID + 1
	}
	s.lastNoticeID = id
	return id
}

func (s *Store) pushToastLocked(message string, severity domain.Severity) int64 {
	id := s.nextNoticeIDLocked()
	s.toasts = append(s.toasts, domain.Toast{ID: id, Message: message, Severity: severity})
	s.noticeTimers[id] = s.clock.AfterFunc(s.timings.ToastTTL, func() {
		s.mutate(func() bool { return s.removeToastLocked(id) })
	})
	return id
}

func (s *Store) pushNotificationLocked(n domain.Notification) int64 {
	n.ID = s.nextNoticeIDLocked()
	s.notifications = append(s.notifications, n)
	s.noticeTimers[n.ID] = s.clock.AfterFunc(s.timings.NotificationTTL, func() {
		s.mutate(func() bool { return s.removeNotificationLocked(n.ID) })
	})
	return n.ID
}

// removeToastLocked guards on existence: expiry after dismissal is a no-op.
func (s *Store) removeToastLocked(id int64) bool {
	for i := range s.toasts {
		if s.toasts[i].ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			s.stopNoticeTimerLocked(id)
			return true
		}
	}
	return false
}

func (s *Store) removeNotificationLocked(id int64) bool {
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			s.stopNoticeTimerLocked(id)
			return true
		}
	}
	return false
}

func (s *Store) stopNoticeTimerLocked(id int64) {
	if t, ok := s.noticeTimers[id]; ok {
		t.Stop()
		delete(s.noticeTimers, id)
	}
}
