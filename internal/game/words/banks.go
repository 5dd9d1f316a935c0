package words

// 各主题词库，对应前端的主题选择
// 每个词库的容量需要覆盖 最大人数 × 回合数 的用词量
var banks = map[string][]string{
	ThemeAnimals: {
		"熊猫", "老虎", "狮子", "大象", "长颈鹿", "猴子", "兔子", "狐狸",
		"海豚", "企鹅", "考拉", "袋鼠", "斑马", "河马", "犀牛", "骆驼",
		"鳄鱼", "乌龟", "孔雀", "猫头鹰", "蝴蝶", "蜜蜂", "蚂蚁", "蜗牛",
		"章鱼", "鲨鱼", "鲸鱼", "螃蟹", "龙虾", "海马", "青蛙", "刺猬",
		"松鼠", "浣熊", "水獭", "羊驼", "仓鼠", "柯基", "柴犬", "天鹅",
		"鸽子", "麻雀", "老鹰", "蝙蝠", "壁虎", "瓢虫", "蜻蜓", "萤火虫",
	},
	ThemeFood: {
		"饺子", "包子", "馒头", "米饭", "面条", "火锅", "烧烤", "披萨",
		"汉堡", "薯条", "寿司", "拉面", "蛋糕", "饼干", "巧克力", "冰淇淋",
		"棉花糖", "爆米花", "西瓜", "苹果", "香蕉", "葡萄", "草莓", "菠萝",
		"芒果", "桃子", "樱桃", "柠檬", "橙子", "榴莲", "玉米", "土豆",
		"番茄", "黄瓜", "胡萝卜", "洋葱", "蘑菇", "豆腐", "鸡蛋", "牛奶",
		"酸奶", "咖啡", "奶茶", "果汁", "蜂蜜", "三明治", "春卷", "月饼",
	},
	ThemeObjects: {
		"雨伞", "眼镜", "手表", "钥匙", "钱包", "背包", "帽子", "围巾",
		"手套", "袜子", "鞋子", "牙刷", "毛巾", "梳子", "镜子", "台灯",
		"蜡烛", "闹钟", "剪刀", "胶水", "铅笔", "橡皮", "尺子", "书包",
		"课本", "地图", "信封", "邮票", "电池", "充电器", "耳机", "音箱",
		"相机", "望远镜", "放大镜", "锤子", "螺丝刀", "梯子", "水桶", "扫帚",
		"枕头", "被子", "窗帘", "花瓶", "风筝", "气球", "魔方", "口罩",
	},
	ThemeVerbs: {
		"跑步", "跳舞", "唱歌", "游泳", "爬山", "骑车", "滑冰", "滑雪",
		"钓鱼", "画画", "写字", "读书", "睡觉", "做饭", "洗碗", "扫地",
		"浇花", "拍照", "打伞", "鼓掌", "挥手", "跳绳", "踢球", "投篮",
		"举重", "射箭", "划船", "冲浪", "潜水", "攀岩", "打字", "弹琴",
		"吹笛", "打鼓", "下棋", "刷牙", "洗脸", "梳头", "系鞋带", "开车",
		"擦窗", "叠被子", "放风筝", "吹蜡烛", "织毛衣", "缝衣服", "钉钉子", "搬箱子",
	},
	ThemeProfessions: {
		"医生", "护士", "教师", "警察", "消防员", "厨师", "司机", "飞行员",
		"宇航员", "科学家", "工程师", "建筑师", "画家", "歌手", "演员", "导演",
		"记者", "摄影师", "裁缝", "理发师", "木匠", "电工", "水管工", "农民",
		"渔夫", "猎人", "邮递员", "快递员", "服务员", "售货员", "收银员", "保安",
		"清洁工", "园丁", "兽医", "药剂师", "法官", "律师", "翻译", "主持人",
		"魔术师", "小丑", "运动员", "教练", "裁判", "船长", "士兵", "侦探",
	},
	ThemePlaces: {
		"学校", "医院", "公园", "超市", "银行", "邮局", "图书馆", "博物馆",
		"电影院", "剧院", "体育场", "游泳馆", "动物园", "植物园", "游乐场", "海滩",
		"沙漠", "森林", "草原", "雪山", "火山", "瀑布", "河流", "湖泊",
		"海洋", "岛屿", "山洞", "桥梁", "灯塔", "码头", "机场", "火车站",
		"地铁站", "公交站", "加油站", "停车场", "餐厅", "咖啡馆", "面包店", "书店",
		"花店", "药店", "理发店", "酒店", "农场", "果园", "菜市场", "广场",
	},
}
