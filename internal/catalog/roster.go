package catalog

import "sanguo/internal/model"

// stat order: leadership, might, intellect, politics, charisma, fortune
func c(name string, f model.Faction, l, m, i, p, ch, fo int) model.Character {
	return model.Character{
		Name:    name,
		Faction: f,
		Stats: model.Stats{
			Leadership: l,
			Might:      m,
			Intellect:  i,
			Politics:   p,
			Charisma:   ch,
			Fortune:    fo,
		},
	}
}

var roster = []model.Character{
	c("Cao Cao", model.FactionWei, 96, 72, 91, 94, 96, 70),
	c("Xiahou Dun", model.FactionWei, 89, 90, 58, 70, 86, 45),
	c("Xiahou Yuan", model.FactionWei, 88, 91, 54, 44, 79, 40),
	c("Zhang Liao", model.FactionWei, 93, 92, 78, 58, 83, 72),
	c("Xu Chu", model.FactionWei, 65, 96, 36, 20, 67, 64),
	c("Dian Wei", model.FactionWei, 56, 95, 35, 29, 61, 35),
	c("Sima Yi", model.FactionWei, 98, 63, 96, 93, 87, 88),
	c("Guo Jia", model.FactionWei, 72, 15, 98, 85, 87, 30),
	c("Xun Yu", model.FactionWei, 52, 14, 95, 98, 94, 55),
	c("Cao Ren", model.FactionWei, 89, 86, 65, 51, 77, 60),
	c("Zhang He", model.FactionWei, 90, 89, 69, 57, 70, 66),
	c("Xu Huang", model.FactionWei, 88, 90, 74, 49, 79, 62),
	c("Yu Jin", model.FactionWei, 78, 78, 70, 60, 58, 20),
	c("Cao Pi", model.FactionWei, 70, 71, 83, 86, 68, 77),
	c("Jia Xu", model.FactionWei, 86, 38, 97, 85, 57, 92),
	c("Pang De", model.FactionWei, 80, 94, 70, 44, 74, 28),

	c("Liu Bei", model.FactionShu, 75, 73, 74, 78, 99, 90),
	c("Guan Yu", model.FactionShu, 95, 97, 75, 62, 93, 42),
	c("Zhang Fei", model.FactionShu, 85, 98, 30, 22, 45, 38),
	c("Zhao Yun", model.FactionShu, 91, 96, 76, 65, 81, 95),
	c("Ma Chao", model.FactionShu, 88, 97, 44, 26, 82, 47),
	c("Huang Zhong", model.FactionShu, 86, 93, 60, 52, 75, 68),
	c("Zhuge Liang", model.FactionShu, 92, 38, 100, 95, 92, 58),
	c("Pang Tong", model.FactionShu, 80, 34, 97, 85, 69, 12),
	c("Fa Zheng", model.FactionShu, 82, 47, 94, 78, 52, 50),
	c("Wei Yan", model.FactionShu, 83, 92, 69, 42, 40, 33),
	c("Jiang Wei", model.FactionShu, 90, 89, 90, 67, 80, 36),
	c("Ma Dai", model.FactionShu, 77, 83, 50, 38, 68, 74),
	c("Guan Ping", model.FactionShu, 74, 82, 68, 60, 76, 31),
	c("Huang Yueying", model.FactionShu, 60, 40, 93, 72, 81, 70),
	c("Ma Liang", model.FactionShu, 34, 27, 85, 84, 90, 48),
	c("Jian Yong", model.FactionShu, 36, 33, 67, 78, 86, 80),

	c("Sun Quan", model.FactionWu, 76, 67, 80, 89, 95, 85),
	c("Sun Ce", model.FactionWu, 92, 92, 69, 70, 97, 25),
	c("Sun Jian", model.FactionWu, 93, 90, 74, 73, 91, 20),
	c("Zhou Yu", model.FactionWu, 97, 71, 96, 86, 93, 44),
	c("Lu Su", model.FactionWu, 80, 56, 92, 91, 89, 72),
	c("Lu Meng", model.FactionWu, 91, 81, 89, 78, 79, 52),
	c("Lu Xun", model.FactionWu, 96, 69, 95, 87, 85, 83),
	c("Gan Ning", model.FactionWu, 86, 94, 76, 38, 65, 78),
	c("Taishi Ci", model.FactionWu, 82, 93, 66, 58, 79, 41),
	c("Huang Gai", model.FactionWu, 79, 83, 70, 62, 74, 56),
	c("Zhou Tai", model.FactionWu, 78, 91, 58, 44, 66, 90),
	c("Ling Tong", model.FactionWu, 72, 88, 51, 50, 71, 54),
	c("Cheng Pu", model.FactionWu, 84, 79, 74, 72, 80, 61),
	c("Sun Shangxiang", model.FactionWu, 68, 85, 70, 55, 86, 59),
	c("Xu Sheng", model.FactionWu, 83, 84, 75, 60, 70, 57),
	c("Ding Feng", model.FactionWu, 76, 82, 63, 47, 62, 81),

	c("Lu Bu", model.FactionQun, 87, 100, 26, 13, 40, 30),
	c("Dong Zhuo", model.FactionQun, 82, 86, 69, 17, 30, 50),
	c("Yuan Shao", model.FactionQun, 83, 69, 70, 68, 90, 27),
	c("Yuan Shu", model.FactionQun, 66, 65, 61, 54, 62, 23),
	c("Diao Chan", model.FactionQun, 26, 26, 81, 65, 100, 76),
	c("Hua Tuo", model.FactionQun, 10, 28, 90, 55, 88, 94),
	c("Zhang Jiao", model.FactionQun, 87, 32, 87, 65, 98, 49),
	c("Gongsun Zan", model.FactionQun, 83, 84, 46, 52, 71, 32),
	c("Liu Biao", model.FactionQun, 60, 57, 71, 78, 82, 65),
	c("Meng Huo", model.FactionQun, 76, 87, 42, 45, 80, 87),
	c("Zhu Rong", model.FactionQun, 70, 89, 39, 31, 72, 79),
	c("Chen Gong", model.FactionQun, 74, 55, 91, 72, 60, 34),
	c("Hua Xiong", model.FactionQun, 80, 92, 54, 37, 56, 15),
	c("Yan Liang", model.FactionQun, 79, 93, 42, 32, 64, 24),
	c("Wen Chou", model.FactionQun, 78, 94, 25, 25, 58, 26),
	c("Zuo Ci", model.FactionQun, 30, 42, 92, 40, 84, 99),
}
