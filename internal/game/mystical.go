package game

// MysticalShopItems 链上拍卖行货架。价格单位为链上代币，
// 支付时按 1e9 MIST 换算。
var MysticalShopItems = []*Item{
	{ID: "mys_01", Name: "Mystical Void Cleaver", Type: TypeWeapon, Rarity: RarityMystical, Price: 1, Str: 180, Int: 80},
	{ID: "mys_02", Name: "Mystical Astral Wand", Type: TypeWeapon, Rarity: RarityMystical, Price: 1, Int: 200, Mana: 800},
	{ID: "mys_03", Name: "Mystical Soul Harvester", Type: TypeWeapon, Rarity: RarityMystical, Price: 1, Str: 160, HP: 1200},
	{ID: "mys_04", Name: "Mystical Eternal Guardian", Type: TypeSubWeapon, Rarity: RarityMystical, Price: 1, Def: 120, HP: 1500},
	{ID: "mys_05", Name: "Mystical Crown of Infinity", Type: TypeHelmet, Rarity: RarityMystical, Price: 1, Def: 90, Mana: 1000, Int: 120},
	{ID: "mys_06", Name: "Mystical Celestial Plate", Type: TypeArmor, Rarity: RarityMystical, Price: 1, Def: 150, HP: 2000},
	{ID: "mys_07", Name: "Mystical Thunderstrike Greaves", Type: TypeLegging, Rarity: RarityMystical, Price: 1, Def: 100, Str: 110},
	{ID: "mys_08", Name: "Mystical Phantom Steps", Type: TypeBoots, Rarity: RarityMystical, Price: 1, Def: 80, Mana: 600},
	{ID: "mys_09", Name: "Mystical Ring of Eternity", Type: TypeRing, Rarity: RarityMystical, Price: 1, Str: 140, Int: 140, HP: 1000},
	{ID: "mys_10", Name: "Mystical Amulet of Divinity", Type: TypeAmulet, Rarity: RarityMystical, Price: 1, Int: 180, Mana: 1200},
	{ID: "mys_11", Name: "Mystical Chaos Bringer", Type: TypeWeapon, Rarity: RarityMystical, Price: 1, Str: 190},
	{ID: "mys_12", Name: "Mystical Oblivion Orb", Type: TypeSubWeapon, Rarity: RarityMystical, Price: 1, Int: 170, Mana: 900},
	{ID: "mys_13", Name: "Mystical Starlight Visor", Type: TypeHelmet, Rarity: RarityMystical, Price: 1, Def: 95, Int: 130},
	{ID: "mys_14", Name: "Mystical Titanforged Mail", Type: TypeArmor, Rarity: RarityMystical, Price: 1, Def: 160, HP: 2200},
	{ID: "mys_15", Name: "Mystical Stormrider Boots", Type: TypeBoots, Rarity: RarityMystical, Price: 1, Def: 85, Str: 100},
	{ID: "mys_16", Name: "Mystical Bloodstone Ring", Type: TypeRing, Rarity: RarityMystical, Price: 1, HP: 1600, Str: 120},
	{ID: "mys_17", Name: "Mystical Sage Pendant", Type: TypeAmulet, Rarity: RarityMystical, Price: 1, Int: 190, Mana: 1100},
	{ID: "mys_18", Name: "Mystical Frostfang Dagger", Type: TypeWeapon, Rarity: RarityMystical, Price: 8000, Str: 175, Int: 90},
	{ID: "mys_19", Name: "Mystical Aegis of Dawn", Type: TypeSubWeapon, Rarity: RarityMystical, Price: 7900, Def: 130, HP: 1400},
	{ID: "mys_20", Name: "Mystical Arcane Diadem", Type: TypeHelmet, Rarity: RarityMystical, Price: 7700, Mana: 1200, Int: 150},
	{ID: "mys_21", Name: "Mystical Voidscale Robes", Type: TypeArmor, Rarity: RarityMystical, Price: 8800, Def: 110, Mana: 1600},
	{ID: "mys_22", Name: "Mystical Lightning Legguards", Type: TypeLegging, Rarity: RarityMystical, Price: 7300, Def: 105, Int: 100},
	{ID: "mys_23", Name: "Mystical Emberwalkers", Type: TypeBoots, Rarity: RarityMystical, Price: 7050, Def: 82, Mana: 700},
	{ID: "mys_24", Name: "Mystical Vitality Band", Type: TypeRing, Rarity: RarityMystical, Price: 9900, HP: 1800},
	{ID: "mys_25", Name: "Mystical Mana Crystal", Type: TypeAmulet, Rarity: RarityMystical, Price: 10300, Mana: 1400},
	{ID: "mys_26", Name: "Mystical Apocalypse Hammer", Type: TypeWeapon, Rarity: RarityMystical, Price: 8600, Str: 200},
	{ID: "mys_27", Name: "Mystical Divine Focus", Type: TypeSubWeapon, Rarity: RarityMystical, Price: 8200, Int: 180, HP: 1000},
	{ID: "mys_28", Name: "Mystical Emperor Diadem", Type: TypeHelmet, Rarity: RarityMystical, Price: 7800, Def: 100, HP: 1200},
	{ID: "mys_29", Name: "Mystical Netherforged Plate", Type: TypeArmor, Rarity: RarityMystical, Price: 9300, Def: 170, HP: 2100},
	{ID: "mys_30", Name: "Mystical Comet Striders", Type: TypeLegging, Rarity: RarityMystical, Price: 7400, Def: 110, Str: 120},
	{ID: "mys_31", Name: "Mystical Eclipse Ring", Type: TypeRing, Rarity: RarityMystical, Price: 9700, Str: 150, Int: 130},
	{ID: "mys_32", Name: "Mystical Soulbound Charm", Type: TypeAmulet, Rarity: RarityMystical, Price: 10400, HP: 1400, Mana: 1000},
	{ID: "mys_33", Name: "Mystical Ragnarok Edge", Type: TypeWeapon, Rarity: RarityMystical, Price: 8700, Str: 195, HP: 800},
	{ID: "mys_34", Name: "Mystical Sacred Buckler", Type: TypeSubWeapon, Rarity: RarityMystical, Price: 8000, Def: 140, Mana: 800},
	{ID: "mys_35", Name: "Mystical Nebula Mask", Type: TypeHelmet, Rarity: RarityMystical, Price: 7650, Int: 160, Mana: 900},
	{ID: "mys_36", Name: "Mystical Inferno Scale", Type: TypeArmor, Rarity: RarityMystical, Price: 8900, Def: 130, Str: 140},
	{ID: "mys_37", Name: "Mystical Winddancer Pants", Type: TypeLegging, Rarity: RarityMystical, Price: 7350, Def: 100, Mana: 800},
	{ID: "mys_38", Name: "Mystical Lunar Sabatons", Type: TypeBoots, Rarity: RarityMystical, Price: 7150, Def: 90, HP: 1000},
	{ID: "mys_39", Name: "Mystical Eternal Loop", Type: TypeRing, Rarity: RarityMystical, Price: 9950, HP: 1700, Int: 110},
	{ID: "mys_40", Name: "Mystical Arcane Relic", Type: TypeAmulet, Rarity: RarityMystical, Price: 10550, Int: 185, Mana: 1300},
	{ID: "mys_41", Name: "Mystical Judgment Halberd", Type: TypeWeapon, Rarity: RarityMystical, Price: 8400, Str: 185, Def: 80},
	{ID: "mys_42", Name: "Mystical Celestial Sphere", Type: TypeSubWeapon, Rarity: RarityMystical, Price: 8150, Int: 175, Mana: 1000},
	{ID: "mys_43", Name: "Mystical Dawnbringer Helm", Type: TypeHelmet, Rarity: RarityMystical, Price: 7750, Def: 98, Str: 120},
	{ID: "mys_44", Name: "Mystical Shadowforge Armor", Type: TypeArmor, Rarity: RarityMystical, Price: 9100, Def: 155, HP: 1800},
	{ID: "mys_45", Name: "Mystical Stormguard Legs", Type: TypeLegging, Rarity: RarityMystical, Price: 7450, Def: 108, Int: 105},
	{ID: "mys_46", Name: "Mystical Voidwalker Treads", Type: TypeBoots, Rarity: RarityMystical, Price: 7200, Def: 88, Mana: 750},
	{ID: "mys_47", Name: "Mystical Might Ring", Type: TypeRing, Rarity: RarityMystical, Price: 9850, Str: 160, HP: 1200},
	{ID: "mys_48", Name: "Mystical Wisdom Talisman", Type: TypeAmulet, Rarity: RarityMystical, Price: 10600, Int: 195, Mana: 1400},
	{ID: "mys_49", Name: "Mystical Doombringer Bow", Type: TypeWeapon, Rarity: RarityMystical, Price: 8550, Str: 170, Int: 110},
	{ID: "mys_50", Name: "Mystical Realm Protector", Type: TypeSubWeapon, Rarity: RarityMystical, Price: 8300, Def: 145, HP: 2000, Mana: 600},
}

// GetMysticalItem 按 ID 查找链上商品
func GetMysticalItem(id string) (*Item, bool) {
	for _, it := range MysticalShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return nil, false
}
