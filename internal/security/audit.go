package security

import (
	"github.com/Aman1684/medskillx/internal/logger"
)

// AuditLogger registra eventos de segurança
type AuditLogger struct{}

func NewAuditLogger() *AuditLogger {
	return &AuditLogger{}
}

// LogEvent registra um evento de segurança
func (al *AuditLogger) LogEvent(eventType, userID, ip, details string) {
	logger.Warn("[SECURITY] %s | User: %s | IP: %s | Details: %s", eventType, userID, ip, details)
}

// LogLogin registra tentativa de login
func (al *AuditLogger) LogLogin(userID, ip string, success bool) {
	status := "SUCCESS"
	if !success {
		status = "FAILED"
	}
	al.LogEvent("LOGIN_"+status, userID, ip, "")
}

// LogRegister registra criação de conta
func (al *AuditLogger) LogRegister(userID, ip string) {
	al.LogEvent("REGISTER", userID, ip, "")
}

// LogPromotion registra promoção de jobSeeker para recruiter
func (al *AuditLogger) LogPromotion(userID, ip string) {
	al.LogEvent("PROMOTE_RECRUITER", userID, ip, "")
}

// LogRateLimit registra bloqueio por rate limit
func (al *AuditLogger) LogRateLimit(endpoint, ip string) {
	al.LogEvent("RATE_LIMIT", "", ip, "Endpoint: "+endpoint)
}
