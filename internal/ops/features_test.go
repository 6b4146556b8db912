package ops

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/blububb/cart/internal/model"
	"github.com/blububb/cart/internal/storage"
	"github.com/cucumber/godog"
)

const cartFeature = "../../features/cart.feature"

type cartTestContext struct {
	kv       *storage.MemoryKV
	store    *Store
	cart     *model.Cart
	snapshot string
}

func (c *cartTestContext) reset() {
	c.kv = storage.NewMemoryKV()
	c.store = NewStore(c.kv)
	c.cart = nil
	c.snapshot = ""
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = c.store.Load(context.Background())
	if !c.cart.IsEmpty() {
		return fmt.Errorf("expected empty cart, got %d items", len(c.cart.Items))
	}
	return nil
}

func (c *cartTestContext) iAddProduct(id, name string, price int, image string) error {
	cart, err := c.store.Add(context.Background(), model.Product{ID: id, Name: name, Price: int64(price), Image: image})
	if err != nil {
		return err
	}
	c.cart = cart
	return nil
}

func (c *cartTestContext) theCartHolds(id string, price, quantity int) error {
	ctx := context.Background()
	if _, err := c.store.Add(ctx, model.Product{ID: id, Name: id, Price: int64(price)}); err != nil {
		return err
	}
	cart, err := c.store.UpdateQuantity(ctx, id, quantity)
	if err != nil {
		return err
	}
	c.cart = cart
	return nil
}

func (c *cartTestContext) iRemoveProduct(id string) error {
	cart, err := c.store.Remove(context.Background(), id)
	if err != nil {
		return err
	}
	c.cart = cart
	return nil
}

func (c *cartTestContext) iSetTheQuantity(id string, quantity int) error {
	cart, err := c.store.UpdateQuantity(context.Background(), id, quantity)
	if err != nil {
		return err
	}
	c.cart = cart
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	cart, err := c.store.Clear(context.Background())
	if err != nil {
		return err
	}
	c.cart = cart
	return nil
}

func (c *cartTestContext) iSaveTheLoadedCart() error {
	ctx := context.Background()
	raw, err := c.kv.Get(ctx, model.CartKey)
	if err != nil {
		return err
	}
	c.snapshot = raw
	return c.store.Save(ctx, c.store.Load(ctx))
}

func (c *cartTestContext) theCartHasLineItems(n int) error {
	if len(c.cart.Items) != n {
		return fmt.Errorf("expected %d line items, got %d", n, len(c.cart.Items))
	}
	return nil
}

func (c *cartTestContext) lineItemHas(id string, quantity, subtotal int) error {
	item := c.cart.Find(id)
	if item == nil {
		return fmt.Errorf("line item %s not found", id)
	}
	if item.Quantity != quantity {
		return fmt.Errorf("expected quantity %d, got %d", quantity, item.Quantity)
	}
	if item.Subtotal != int64(subtotal) {
		return fmt.Errorf("expected subtotal %d, got %d", subtotal, item.Subtotal)
	}
	return nil
}

func (c *cartTestContext) theCartHasNoLineItem(id string) error {
	if c.cart.Find(id) != nil {
		return fmt.Errorf("line item %s still present", id)
	}
	return nil
}

func (c *cartTestContext) theCartTotalIs(total, count int) error {
	for _, cart := range []*model.Cart{c.cart, c.store.Load(context.Background())} {
		if cart.Total != int64(total) {
			return fmt.Errorf("expected total %d, got %d", total, cart.Total)
		}
		if cart.ItemCount != count {
			return fmt.Errorf("expected item count %d, got %d", count, cart.ItemCount)
		}
	}
	return nil
}

func (c *cartTestContext) theStoredDocumentIs(want string) error {
	raw, err := c.kv.Get(context.Background(), model.CartKey)
	if err != nil {
		return err
	}
	if raw != want {
		return fmt.Errorf("expected stored document %s, got %s", want, raw)
	}
	return nil
}

func (c *cartTestContext) theStoredDocumentIsUnchanged() error {
	return c.theStoredDocumentIs(c.snapshot)
}

func (c *cartTestContext) isFormattedAs(amount int, want string) error {
	if got := model.FormatPrice(int64(amount)); got != want {
		return fmt.Errorf("expected %q, got %q", want, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^the cart holds "([^"]*)" priced (\d+) with quantity (\d+)$`, tc.theCartHolds)

	// When steps
	ctx.Step(`^I add product "([^"]*)" named "([^"]*)" priced (\d+) with image "([^"]*)"$`, tc.iAddProduct)
	ctx.Step(`^I remove product "([^"]*)"$`, tc.iRemoveProduct)
	ctx.Step(`^I set the quantity of "([^"]*)" to (-?\d+)$`, tc.iSetTheQuantity)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)
	ctx.Step(`^I save the loaded cart$`, tc.iSaveTheLoadedCart)

	// Then steps
	ctx.Step(`^the cart has (\d+) line items?$`, tc.theCartHasLineItems)
	ctx.Step(`^line item "([^"]*)" has quantity (\d+) and subtotal (\d+)$`, tc.lineItemHas)
	ctx.Step(`^the cart has no line item "([^"]*)"$`, tc.theCartHasNoLineItem)
	ctx.Step(`^the cart total is (\d+) with (\d+) items?$`, tc.theCartTotalIs)
	ctx.Step(`^the stored document is exactly '([^']*)'$`, tc.theStoredDocumentIs)
	ctx.Step(`^the stored document is unchanged$`, tc.theStoredDocumentIsUnchanged)
	ctx.Step(`^(\d+) is formatted as "([^"]*)"$`, tc.isFormattedAs)
}

func TestFeatures(t *testing.T) {
	if _, err := os.Stat(cartFeature); os.IsNotExist(err) {
		t.Skipf("%s not found", cartFeature)
	}

	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{cartFeature},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
