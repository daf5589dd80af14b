package systems

import (
	"image/color"
	"testing"

	"github.com/decker502/fruitmerge/pkg/components"
	"github.com/decker502/fruitmerge/pkg/config"
	"github.com/decker502/fruitmerge/pkg/ecs"
	"github.com/decker502/fruitmerge/pkg/entities"
	"github.com/hajimehoshi/ebiten/v2"
)

func addDrawable(em *ecs.EntityManager, depth int) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: 10, Y: 10})
	em.AddComponent(id, &components.DepthComponent{Depth: depth})
	em.AddComponent(id, &components.ShapeComponent{
		Kind:      components.ShapeCircle,
		Radius:    5,
		FillColor: color.RGBA{R: 0xff, A: 0xff},
	})
	return id
}

func TestRenderCollectOrder(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em, nil)

	hud := addDrawable(em, config.DepthHUD)
	fruitA := addDrawable(em, config.DepthFruit)
	effect := addDrawable(em, config.DepthEffect)
	fruitB := addDrawable(em, config.DepthFruit)
	overlay := addDrawable(em, config.DepthOverlay)
	destroyed := addDrawable(em, config.DepthFruit)
	em.DestroyEntity(destroyed)

	got := system.collect(config.DepthBackground, config.DepthOverlay)
	want := []ecs.EntityID{fruitA, fruitB, effect, hud}
	if len(got) != len(want) {
		t.Fatalf("collect() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("collect() = %v, want %v", got, want)
		}
	}

	got = system.collect(config.DepthOverlay, config.DepthPanelText+1)
	if len(got) != 1 || got[0] != overlay {
		t.Errorf("遮罩层 collect() = %v, want [%d]", got, overlay)
	}
}

func TestRenderDrawLayer(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em, nil)

	addDrawable(em, config.DepthFruit)

	// 精灵图片为 nil 的水果
	fruit := addDrawable(em, config.DepthFruit)
	em.AddComponent(fruit, &components.SpriteComponent{DisplayWidth: 64, DisplayHeight: 64})

	// 带高亮的图片精灵
	sprite := em.CreateEntity()
	em.AddComponent(sprite, &components.PositionComponent{X: 100, Y: 100})
	em.AddComponent(sprite, &components.DepthComponent{Depth: config.DepthFruit})
	em.AddComponent(sprite, &components.RotationComponent{Angle: 0.5})
	em.AddComponent(sprite, &components.SpriteComponent{Image: ebiten.NewImage(16, 16), DisplayWidth: 64, DisplayHeight: 64})
	em.AddComponent(sprite, &components.HoverHighlightComponent{Scale: 1.15, Tint: color.RGBA{R: 0xff, G: 0x66, B: 0x66, A: 0xff}, IsActive: true})

	entities.NewGameOverDialog(em, 480, 800, entities.GameOverDialogTexts{
		Title: "Game Over", Score: "Score: 0", Restart: "Restart",
	}, config.DefaultGameConfig().Animation, nil)

	screen := ebiten.NewImage(480, 800)
	system.DrawLayer(screen, config.DepthBackground, config.DepthOverlay)
	system.DrawLayer(screen, config.DepthOverlay, config.DepthPanelText+1)
}

func TestButtonBoundsWithoutFont(t *testing.T) {
	button := &components.ButtonComponent{PaddingX: 32, PaddingY: 12}
	r := ButtonBounds(nil, "Restart", 240, 470, button)

	w := 7*16 + 64
	h := 30 + 24
	if r.Dx() != w || r.Dy() != h {
		t.Errorf("按钮尺寸 = %dx%d, want %dx%d", r.Dx(), r.Dy(), w, h)
	}
	cx := (r.Min.X + r.Max.X) / 2
	cy := (r.Min.Y + r.Max.Y) / 2
	if cx != 240 || cy != 470 {
		t.Errorf("按钮中心 = (%d, %d), want (240, 470)", cx, cy)
	}
}

func TestUpdateButtonBounds(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em, nil)

	d := entities.NewGameOverDialog(em, 480, 800, entities.GameOverDialogTexts{
		Title: "Game Over", Score: "Score: 0", Restart: "Restart",
	}, config.DefaultGameConfig().Animation, nil)

	system.UpdateButtonBounds()
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, d.Button)
	if button.Bounds.Empty() {
		t.Fatal("按钮点击区域不应为空")
	}
	cx := (button.Bounds.Min.X + button.Bounds.Max.X) / 2
	cy := (button.Bounds.Min.Y + button.Bounds.Max.Y) / 2
	if cx != 240 || cy != 470 {
		t.Errorf("按钮应以文字位置为中心, got (%d, %d)", cx, cy)
	}
}
