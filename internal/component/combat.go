package component

// Health — компонент здоровья
type Health struct {
	Value int
	Max   int
}

// SpellSlot — одна экипированная способность.
type SpellSlot struct {
	SpellID   string
	Cooldown  float64 // Перезарядка из описания заклинания
	Remaining float64 // Оставшееся время до следующего каста
	Manual    bool    // Кастуется только по команде игрока
}

// Ready сообщает, можно ли кастовать слот прямо сейчас.
func (s *SpellSlot) Ready() bool {
	return s.Remaining <= 0
}

// SpellCaster — набор способностей сущности.
type SpellCaster struct {
	Slots []SpellSlot
}

// Slot находит слот по id заклинания.
func (c *SpellCaster) Slot(spellID string) (*SpellSlot, bool) {
	for i := range c.Slots {
		if c.Slots[i].SpellID == spellID {
			return &c.Slots[i], true
		}
	}
	return nil, false
}
