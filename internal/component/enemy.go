package component

// Enemy представляет вражескую сущность.
type Enemy struct {
	DefID           string  // ID из enemies.json
	ContactDamage   int     // Урон игроку при касании
	XP              int     // Опыт за убийство
	ContactCooldown float64 // Таймер до следующего удара по игроку
}
