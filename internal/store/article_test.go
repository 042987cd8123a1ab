package store

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"helpcenter/internal/models"
)

var articleRowColumns = []string{
	"id", "title", "content", "description", "category_id", "icon_name",
	"video_url", "is_quick_access", "view_count", "created_at", "updated_at",
}

func articleRow(rows *sqlmock.Rows, id int64, title string, categoryID int64, now time.Time) *sqlmock.Rows {
	return rows.AddRow(id, title, "content", nil, categoryID, nil, nil, false, 0, now, now)
}

func TestArticleListByCategoryOrdersByTitle(t *testing.T) {
	_, articles, mock := mockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows(articleRowColumns)
	articleRow(rows, 1, "Activating two-factor auth", 7, now)
	articleRow(rows, 2, "Reset password", 7, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM articles WHERE category_id = $1 ORDER BY title ASC")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	items, err := articles.ListByCategory(7)
	if err != nil {
		t.Fatalf("ListByCategory: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].Title != "Activating two-factor auth" || items[1].Title != "Reset password" {
		t.Errorf("query order not preserved: %q, %q", items[0].Title, items[1].Title)
	}
}

func TestArticleListQuickAccess(t *testing.T) {
	_, articles, mock := mockDB(t)

	now := time.Now()
	joined := append(append([]string{}, articleRowColumns...), "category_title", "category_slug")
	rows := sqlmock.NewRows(joined).
		AddRow(int64(3), "Entendendo sua fatura", "content", nil, int64(2), nil, nil, true, 0, now, now, "Cobrança", "cobranca")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.is_quick_access = $1 ORDER BY a.title ASC")).
		WithArgs(true).
		WillReturnRows(rows)

	items, err := articles.ListQuickAccess()
	if err != nil {
		t.Fatalf("ListQuickAccess: %v", err)
	}
	if len(items) != 1 || items[0].ID != 3 {
		t.Fatalf("items = %+v", items)
	}
	// The joined category label feeds the homepage icon fallback.
	if items[0].CategoryTitle != "Cobrança" {
		t.Errorf("CategoryTitle = %q, want joined category label", items[0].CategoryTitle)
	}
}

func TestArticleFindByIDJoinsCategory(t *testing.T) {
	_, articles, mock := mockDB(t)

	now := time.Now()
	joined := append(append([]string{}, articleRowColumns...), "category_title", "category_slug")
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN categories c ON c.id = a.category_id")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(joined).
			AddRow(int64(5), "Reset password", "body", nil, int64(7), nil, nil, false, 12, now, now, "Segurança", "seguranca"))

	a, err := articles.FindByID(5)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if a == nil {
		t.Fatal("nil article")
	}
	if !a.HasCategory() || a.CategoryTitle != "Segurança" || a.CategorySlug != "seguranca" {
		t.Errorf("breadcrumb fields = %q / %q", a.CategoryTitle, a.CategorySlug)
	}
	if a.ViewCount != 12 {
		t.Errorf("ViewCount = %d", a.ViewCount)
	}
}

func TestArticleFindByIDDanglingCategory(t *testing.T) {
	_, articles, mock := mockDB(t)

	now := time.Now()
	joined := append(append([]string{}, articleRowColumns...), "category_title", "category_slug")
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN categories c ON c.id = a.category_id")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(joined).
			AddRow(int64(5), "Orphaned article", "body", nil, int64(99), nil, nil, false, 0, now, now, "", ""))

	a, err := articles.FindByID(5)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if a == nil {
		t.Fatal("dangling category_id must still return the article")
	}
	if a.HasCategory() {
		t.Error("HasCategory() = true for dangling reference")
	}
	if a.CategoryID != 99 {
		t.Errorf("CategoryID = %d, want preserved 99", a.CategoryID)
	}
}

func TestArticleFindByIDNotFound(t *testing.T) {
	_, articles, mock := mockDB(t)

	joined := append(append([]string{}, articleRowColumns...), "category_title", "category_slug")
	mock.ExpectQuery(regexp.QuoteMeta("LEFT JOIN categories c ON c.id = a.category_id")).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(joined))

	a, err := articles.FindByID(404)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if a != nil {
		t.Errorf("expected nil, got %+v", a)
	}
}

func TestArticleCreate(t *testing.T) {
	_, articles, mock := mockDB(t)

	now := time.Now()
	rows := sqlmock.NewRows(articleRowColumns)
	articleRow(rows, 10, "Reset password", 7, now)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO articles (title,content,description,category_id,icon_name,video_url,is_quick_access)")).
		WithArgs("Reset password", "content", nil, int64(7), nil, nil, false).
		WillReturnRows(rows)

	created, err := articles.Create(&models.Article{
		Title:      "Reset password",
		Content:    "content",
		CategoryID: 7,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != 10 {
		t.Errorf("ID = %d", created.ID)
	}
}

func TestArticleIncrementViewsCallsProcedure(t *testing.T) {
	_, articles, mock := mockDB(t)

	// Two sequential page loads fire two independent increments.
	mock.ExpectExec(regexp.QuoteMeta("SELECT increment_article_views($1)")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SELECT increment_article_views($1)")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := articles.IncrementViews(5); err != nil {
		t.Fatalf("IncrementViews: %v", err)
	}
	if err := articles.IncrementViews(5); err != nil {
		t.Fatalf("IncrementViews: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
