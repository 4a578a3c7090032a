package service

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Aman1684/medskillx/internal/logger"
	"github.com/Aman1684/medskillx/internal/repository/jsonstore"
)

// CleanupService remove currículos órfãos do diretório de uploads: arquivos
// que nenhuma candidatura referencia (upload validado mas gravação posterior
// falhou, ou arquivo deixado por crash no meio do fluxo de submissão)
type CleanupService struct {
	store      *jsonstore.Store
	uploadsDir string
	hour       int // Hora do dia para executar (0-23)
	stopChan   chan bool
	running    bool
}

// NewCleanupService cria o serviço de limpeza
// hour: hora do dia para executar (0-23), padrão 3 (3h da manhã)
func NewCleanupService(store *jsonstore.Store, uploadsDir string, hour int) *CleanupService {
	if hour < 0 || hour > 23 {
		hour = 3
	}
	return &CleanupService{
		store:      store,
		uploadsDir: uploadsDir,
		hour:       hour,
		stopChan:   make(chan bool),
	}
}

// Start inicia o serviço em background, uma execução por dia no horário configurado
func (c *CleanupService) Start() {
	if c.running {
		logger.Warn("CleanupService já está em execução")
		return
	}

	c.running = true
	logger.Info("CleanupService iniciado | Agendado para rodar diariamente às %02d:00", c.hour)

	go func() {
		for {
			now := time.Now()
			nextRun := time.Date(now.Year(), now.Month(), now.Day(), c.hour, 0, 0, 0, now.Location())
			if now.After(nextRun) || now.Equal(nextRun) {
				nextRun = nextRun.Add(24 * time.Hour)
			}

			waitDuration := time.Until(nextRun)
			logger.Debug("Próxima limpeza agendada para: %s (em %v)", nextRun.Format("2006-01-02 15:04:05"), waitDuration)

			timer := time.NewTimer(waitDuration)

			select {
			case <-timer.C:
				c.runCleanup()
			case <-c.stopChan:
				timer.Stop()
				logger.Info("CleanupService parado")
				return
			}
		}
	}()
}

// Stop para o serviço de limpeza
func (c *CleanupService) Stop() {
	if !c.running {
		return
	}
	c.running = false
	close(c.stopChan)
}

func (c *CleanupService) runCleanup() {
	logger.Info("Executando limpeza de uploads órfãos...")

	start := time.Now()
	removed, err := c.RemoveOrphanUploads(24 * time.Hour)
	duration := time.Since(start)

	if err != nil {
		logger.Error("Erro na limpeza de uploads órfãos: %v", err)
	} else {
		logger.Info("Limpeza concluída | Removidos: %d | Duração: %v", removed, duration)
	}
}

// RemoveOrphanUploads apaga arquivos de uploads/ sem candidatura associada e
// mais antigos que minAge (protege uploads de submissões em andamento)
func (c *CleanupService) RemoveOrphanUploads(minAge time.Duration) (int, error) {
	applications, err := c.store.Applications()
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]bool, len(applications))
	for _, a := range applications {
		referenced[a.ResumePath] = true
	}

	entries, err := os.ReadDir(c.uploadsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-minAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || referenced[entry.Name()] {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(c.uploadsDir, entry.Name())); err != nil {
			logger.Warn("Falha ao remover upload órfão %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}
	return removed, nil
}
