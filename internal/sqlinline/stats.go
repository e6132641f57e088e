package sqlinline

const QAdminStats = `--sql 6b1e3d9f-8c5a-42b7-9d0e-4a2f7c6e1b38
select
  (select count(*) from users where role = 'user')::bigint as total_users,
  (select coalesce(sum(amount), 0) from donations where status = 'success')::bigint as total_donations;
`

const QAdminUserRegistry = `--sql 0c5a7e9b-4d2f-48c1-b6a8-9e3d1f7a5c24
select u.id, u.name, u.email, u.phone, u.created_at,
       coalesce(sum(d.amount) filter (where d.status = 'success'), 0)::bigint as total_donated
from users u
left join donations d on d.user_id = u.id
where u.role = 'user'
group by u.id, u.name, u.email, u.phone, u.created_at
order by u.created_at desc;
`

const QAdminDonationLedger = `--sql 5e9c1b7d-3a6f-44e8-8c2b-7d0a9f4e6c13
select d.id, d.user_id, u.name, u.email, d.campaign_id, d.amount, d.currency,
       coalesce(d.payment_id, ''), coalesce(d.order_id, ''), d.status,
       coalesce(d.donor_country, ''), d.created_at
from donations d
join users u on u.id = d.user_id
order by d.created_at desc;
`
