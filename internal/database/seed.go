package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"helpcenter/internal/slug"
)

// Seed populates the database with initial development data: a handful of
// categories and articles so the public pages have something to show.
// It is a no-op if any category already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	categories := []struct {
		title       string
		description string
		iconName    string
		homeOrder   int
	}{
		{"Primeiros Passos", "Comece por aqui: configuração inicial da sua conta.", "Rocket", 1},
		{"Cobrança", "Faturas, pagamentos e reembolsos.", "CreditCard", 2},
		{"Segurança", "Senhas, autenticação em duas etapas e acesso.", "Shield", 3},
		{"Integrações", "Conecte o help center às suas ferramentas.", "Plug", 4},
	}

	categoryIDs := make(map[string]int64)
	for _, c := range categories {
		var id int64
		err := db.QueryRow(`
			INSERT INTO categories (title, slug, description, icon_name, home_order)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`, c.title, slug.Generate(c.title), c.description, c.iconName, c.homeOrder).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed insert category %q: %w", c.title, err)
		}
		categoryIDs[c.title] = id
	}

	articles := []struct {
		title       string
		content     string
		description string
		category    string
		iconName    string
		quickAccess bool
	}{
		{
			title:       "Como redefinir sua senha",
			content:     "Acesse **Configurações → Segurança** e clique em *Redefinir senha*.\n\nVocê receberá um e-mail com o link de redefinição.",
			description: "Passo a passo para recuperar o acesso à sua conta.",
			category:    "Segurança",
			iconName:    "KeyRound",
			quickAccess: true,
		},
		{
			title:       "Ativando a autenticação em duas etapas",
			content:     "A autenticação em duas etapas adiciona uma camada extra de proteção.\n\n1. Abra as configurações de segurança\n2. Escaneie o QR code com seu aplicativo autenticador\n3. Confirme o código de seis dígitos",
			description: "Proteja sua conta com um segundo fator.",
			category:    "Segurança",
			iconName:    "Lock",
			quickAccess: false,
		},
		{
			title:       "Entendendo sua fatura",
			content:     "Sua fatura é gerada no primeiro dia útil de cada mês e lista todos os itens cobrados no período.",
			description: "O que cada linha da fatura significa.",
			category:    "Cobrança",
			iconName:    "FileText",
			quickAccess: true,
		},
		{
			title:       "Criando sua primeira integração",
			content:     "Gere uma chave de API em **Configurações → Integrações** e siga o guia da ferramenta que deseja conectar.",
			description: "Do zero à primeira chamada de API.",
			category:    "Integrações",
			iconName:    "Zap",
			quickAccess: false,
		},
		{
			title:       "Bem-vindo ao help center",
			content:     "Este guia apresenta a estrutura do help center: categorias, artigos e a busca.",
			description: "Uma visão geral de tudo o que você encontra por aqui.",
			category:    "Primeiros Passos",
			iconName:    "BookOpen",
			quickAccess: true,
		},
	}

	for _, a := range articles {
		_, err := db.Exec(`
			INSERT INTO articles (title, content, description, category_id, icon_name, is_quick_access)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, a.title, a.content, a.description, categoryIDs[a.category], a.iconName, a.quickAccess)
		if err != nil {
			return fmt.Errorf("seed insert article %q: %w", a.title, err)
		}
	}

	slog.Info("database seeded with sample help-center content",
		"categories", len(categories),
		"articles", len(articles),
	)

	return nil
}
