package device

// registerCatalog is the compiled-in register table. Entries are filtered by
// applicability when a session loads; the resolved table can afterwards be
// amended or overridden by a user overlay file.
var registerCatalog = []RegisterDef{
	// memory remap registers, per vendor family
	{"SYSCON_SYSMEMREMAP", 0x40048000, 4, "LPC8xx,LPC11xx*,LPC11Uxx,LPC12xx,LPC13xx"},
	{"SYSCON_SYSMEMREMAP", 0x40074000, 4, "LPC15xx"},
	{"SCB_MEMMAP", 0x400FC040, 4, "LPC17xx"},
	{"SCB_MEMMAP", 0xE01FC040, 4, "LPC21xx,LPC22xx,LPC23xx,LPC24xx"},
	{"M4MEMMAP", 0x40043100, 4, "LPC43xx*"},

	// STM32 clock / pin configuration for the TRACESWO pin
	{"RCC_APB2ENR", 0x40021018, 4, "STM32F1*"},
	{"AFIO_MAPR", 0x40010004, 4, "STM32F1*"},
	{"RCC_AHB1ENR", 0x40023830, 4, "STM32F4*,STM32F7*"},
	{"GPIOB_MODER", 0x40020400, 4, "STM32F4*,STM32F7*"},
	{"GPIOB_AFRL", 0x40020420, 4, "STM32F4*,STM32F7*"},
	{"GPIOB_OSPEEDR", 0x40020408, 4, "STM32F4*,STM32F7*"},
	{"GPIOB_PUPDR", 0x4002040C, 4, "STM32F4*,STM32F7*"},
	{"DBGMCU_CR", 0xE0042004, 4, "STM32F03,STM32F05,STM32F07,STM32F09,STM32F1*,STM32F2*,STM32F3*,STM32F4*,STM32F7*"},

	{"TRACECLKDIV", 0x400480AC, 4, "LPC13xx"},
	{"TRACECLKDIV", 0x400740D8, 4, "LPC15xx"},
	{"IOCON_PIO0_9", 0x40044024, 4, "LPC13xx"},

	// Cortex-M debug block (architecturally fixed addresses)
	{"SCB_DHCSR", 0xE000EDF0, 4, "*"},
	{"SCB_DCRSR", 0xE000EDF4, 4, "*"},
	{"SCB_DCRDR", 0xE000EDF8, 4, "*"},
	{"SCB_DEMCR", 0xE000EDFC, 4, "*"},

	// Trace Port Interface Unit
	{"TPIU_SSPSR", 0xE0040000, 4, "*"},
	{"TPIU_CSPSR", 0xE0040004, 4, "*"},
	{"TPIU_ACPR", 0xE0040010, 4, "*"},
	{"TPIU_SPPR", 0xE00400F0, 4, "*"},
	{"TPIU_FFCR", 0xE0040304, 4, "*"},
	{"TPIU_DEVID", 0xE0040FC8, 4, "*"},

	// Data Watchpoint and Trace unit
	{"DWT_CTRL", 0xE0001000, 4, "*"},
	{"DWT_CYCCNT", 0xE0001004, 4, "*"},

	// Instrumentation Trace Macrocell
	{"ITM_TER", 0xE0000E00, 4, "*"},
	{"ITM_TPR", 0xE0000E40, 4, "*"},
	{"ITM_TCR", 0xE0000E80, 4, "*"},
	{"ITM_LAR", 0xE0000FB0, 4, "*"},
	{"ITM_IWR", 0xE0000EF8, 4, "*"},
	{"ITM_IRR", 0xE0000EFC, 4, "*"},
	{"ITM_IMCR", 0xE0000F00, 4, "*"},
	{"ITM_LSR", 0xE0000FB4, 4, "*"},
}

// Registers returns the built-in register catalog.
func Registers() []RegisterDef {
	return registerCatalog
}
