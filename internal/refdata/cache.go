package refdata

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/AgendaServicos01/agenda-api/internal/domain/agenda"
	"github.com/AgendaServicos01/agenda-api/internal/models"
)

const (
	servicesKey = "refdata:v1:services"
	statusesKey = "refdata:v1:statuses"

	cacheTTL = 12 * time.Hour
)

// Cache guarda os catálogos de serviços e status pela sessão do processo.
// Carregado uma vez no boot e nunca invalidado em sessão; quando há redis,
// o snapshot JSON é compartilhado entre instâncias.
type Cache struct {
	repo domain.Repository
	rdb  *redis.Client

	mu       sync.RWMutex
	services []models.Service
	statuses []models.Status
}

func New(repo domain.Repository, rdb *redis.Client) *Cache {
	return &Cache{repo: repo, rdb: rdb}
}

// Warm carrega os dois catálogos em paralelo e só retorna quando ambos
// terminarem. Qualquer falha derruba o warm inteiro: nenhuma listagem é
// servida sem os catálogos completos.
func (c *Cache) Warm(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		services []models.Service
		statuses []models.Status
		errSvc   error
		errSt    error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		services, errSvc = loadCatalog(ctx, c.rdb, servicesKey, func() ([]models.Service, error) {
			return c.repo.ListServices(ctx)
		})
	}()

	go func() {
		defer wg.Done()
		statuses, errSt = loadCatalog(ctx, c.rdb, statusesKey, func() ([]models.Status, error) {
			return c.repo.ListStatuses(ctx)
		})
	}()

	wg.Wait()

	if errSvc != nil {
		return errSvc
	}
	if errSt != nil {
		return errSt
	}

	c.mu.Lock()
	c.services = services
	c.statuses = statuses
	c.mu.Unlock()

	return nil
}

// loadCatalog tenta o redis primeiro e cai para o repositório, gravando o
// resultado de volta. Sem redis configurado, vai direto ao repositório.
func loadCatalog[T any](
	ctx context.Context,
	rdb *redis.Client,
	key string,
	fetch func() ([]T, error),
) ([]T, error) {

	if rdb != nil {
		if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
			var items []T
			if err := json.Unmarshal(raw, &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := fetch()
	if err != nil {
		return nil, err
	}

	if rdb != nil {
		if raw, err := json.Marshal(items); err == nil {
			// Falha de escrita no redis não é fatal; o snapshot local basta.
			rdb.Set(ctx, key, raw, cacheTTL)
		}
	}

	return items, nil
}

// --------------------------------------------------
// Consultas
// --------------------------------------------------

func (c *Cache) Services() []models.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.services
}

func (c *Cache) Statuses() []models.Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statuses
}

func (c *Cache) ServiceName(id uint) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, s := range c.services {
		if s.ID == id {
			return s.Name
		}
	}
	return "Serviço não encontrado"
}

func (c *Cache) ServicePrice(id uint) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, s := range c.services {
		if s.ID == id {
			return s.Price
		}
	}
	return 0
}

func (c *Cache) StatusName(id uint) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, st := range c.statuses {
		if st.ID == id {
			return st.Name
		}
	}
	return "Status não encontrado"
}

func (c *Cache) StatusColor(id uint) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, st := range c.statuses {
		if st.ID == id {
			return st.Color
		}
	}
	return "#666"
}
