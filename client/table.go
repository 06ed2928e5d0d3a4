package client

import (
	"context"
	"io"

	"inventoryapi/models"
)

// View is the derived presentation state: the filtered list, the
// current page slice and the page-number strip. It is recomputed
// wholesale after every state change; nothing in it is patched.
type View struct {
	Filtered    []models.Product
	Page        []models.Product
	PageNumbers []int
	TotalPages  int
}

// TableState composes the table pipeline: products -> filter ->
// pagination, with the selection pruned against the latest list.
// Every mutator ends in recompute, keeping derived state a pure
// function of (products, query, page).
type TableState struct {
	Client    *Client
	Deleter   *Deleter
	Search    Search
	Pager     *Pager
	Selection *Selection

	// ScrollToTop, when set, is called after page navigation. Purely
	// a UI nicety.
	ScrollToTop func()

	products []models.Product
	view     View
}

func NewTableState(c *Client) *TableState {
	return &TableState{
		Client:    c,
		Deleter:   NewDeleter(c),
		Pager:     NewPager(),
		Selection: NewSelection(),
	}
}

// Refresh pulls the product list through the client cache and
// recomputes the view. Selected ids that vanished from the list are
// pruned.
func (t *TableState) Refresh(ctx context.Context) error {
	products, err := t.Client.Products(ctx)
	if err != nil {
		return err
	}

	t.products = products
	t.Selection.Prune(productIDs(products))
	t.recompute()
	return nil
}

func (t *TableState) View() View {
	return t.view
}

func (t *TableState) Products() []models.Product {
	return t.products
}

// VisibleIDs are the ids on the current page, the scope of selectAll
// and the bulk-action bar.
func (t *TableState) VisibleIDs() []int {
	return productIDs(t.view.Page)
}

func (t *TableState) SetQuery(query string) {
	t.Search.SetQuery(t.products, query)
	t.recompute()
}

func (t *TableState) SelectSuggestion(suggestion string) {
	t.Search.SelectSuggestion(suggestion)
	t.recompute()
}

func (t *TableState) ClearSearch() {
	t.Search.Clear()
	t.recompute()
}

func (t *TableState) SetPage(page int) {
	t.Pager.SetPage(page, len(t.view.Filtered))
	t.recompute()

	if t.ScrollToTop != nil {
		t.ScrollToTop()
	}
}

func (t *TableState) SetPageSize(size int) {
	t.Pager.SetPageSize(size)
	t.recompute()
}

func (t *TableState) ToggleSelect(id int) {
	t.Selection.Toggle(id)
}

func (t *TableState) SelectAllVisible() {
	t.Selection.SelectAll(t.VisibleIDs())
}

// DeleteSelected runs the bulk delete over the current selection and
// refreshes. The selection is cleared only when every delete
// succeeded.
func (t *TableState) DeleteSelected(ctx context.Context) (Notice, error) {
	_, notice, err := t.Deleter.DeleteMany(ctx, t.Selection.IDs())

	if err == nil {
		t.Selection.Clear()
	}

	if refreshErr := t.Refresh(ctx); refreshErr != nil && err == nil {
		return notice, refreshErr
	}

	return notice, err
}

// DeleteOne deletes a single confirmed product and refreshes.
func (t *TableState) DeleteOne(ctx context.Context, product models.Product) (Notice, error) {
	notice, err := t.Deleter.DeleteOne(ctx, product)

	if refreshErr := t.Refresh(ctx); refreshErr != nil && err == nil {
		return notice, refreshErr
	}

	return notice, err
}

// ExportCSV writes the currently filtered set (the full set when no
// query is active).
func (t *TableState) ExportCSV(w io.Writer, includeHeader bool) error {
	return WriteCSV(w, t.view.Filtered, includeHeader)
}

func (t *TableState) recompute() {
	filtered := Filter(t.products, t.Search.Query)

	t.Pager.Resize(len(filtered))

	t.view = View{
		Filtered:    filtered,
		Page:        t.Pager.Slice(filtered),
		PageNumbers: t.Pager.PageNumbers(len(filtered)),
		TotalPages:  t.Pager.TotalPages(len(filtered)),
	}
}

func productIDs(products []models.Product) []int {
	ids := make([]int, len(products))
	for i, product := range products {
		ids[i] = product.Id
	}
	return ids
}
